package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 60*time.Second, cfg.Cache.AvailabilityTTL())
	assert.Equal(t, 180*time.Second, cfg.Cache.HorizonTTL())
	assert.Equal(t, 40, cfg.Slots.DurationMinutes)
	assert.Equal(t, 20, cfg.Slots.StepMinutes)
	assert.Equal(t, 60, cfg.Slots.LeadMinutes)
	assert.Equal(t, 14, cfg.Slots.DefaultHorizonDays)
	assert.True(t, cfg.Slots.FullDayBreak)
	assert.Empty(t, cfg.Backend.URL, "standalone mode by default")
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[slots]
step_minutes = 40

[cache]
backend = "redis"
redis_addr = "redis:6379"

[backend]
url = "http://booking:3000"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 40, cfg.Slots.StepMinutes)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "http://booking:3000", cfg.Backend.URL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad cache backend", "[cache]\nbackend = \"memcached\"\n"},
		{"zero duration", "[slots]\nduration_minutes = -1\n"},
		{"horizon out of range", "[slots]\ndefault_horizon_days = 120\n"},
		{"close before open", "[schedule]\nopen_time = \"19:00\"\nclose_time = \"09:00\"\n"},
		{"bogus weekday", "[schedule]\nclosed_weekdays = [\"Frunday\"]\n"},
		{"inverted break", "[[schedule.breaks]]\nstart = \"14:00\"\nend = \"13:00\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestWeeklySchedule(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	schedule, err := cfg.WeeklySchedule()
	require.NoError(t, err)

	assert.Equal(t, 9*60, schedule.OpenMinute)
	assert.Equal(t, 19*60, schedule.CloseMinute)
	assert.ElementsMatch(t, []time.Weekday{time.Sunday, time.Monday}, schedule.ClosedWeekdays)
	assert.Equal(t, 17*60+40, schedule.CloseOverrides[time.Saturday])
	require.Len(t, schedule.Breaks, 1)
	assert.Equal(t, 13*60, schedule.Breaks[0].StartMinute)
	assert.Equal(t, 14*60, schedule.Breaks[0].EndMinute)
}

func TestDatabaseDSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[database]
host = "db"
port = 5433
user = "svc"
password = "secret"
dbname = "availability"
`))
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5433 user=svc password=secret dbname=availability sslmode=disable", cfg.Database.DSN())
}
