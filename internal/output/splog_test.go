package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"gitsplit.dev/gitsplit/internal/output"
)

func TestSplog(t *testing.T) {
	t.Run("console hides debug unless enabled", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := output.NewSplogWithOptions(output.Options{Writer: &buf})
		require.NoError(t, err)

		splog.Info("pushed %s", "main")
		splog.Debug("hidden")

		require.Equal(t, "pushed main\n", buf.String())
	})

	t.Run("debug mode prints debug messages", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := output.NewSplogWithOptions(output.Options{Writer: &buf, Debug: true})
		require.NoError(t, err)

		splog.Debug("visible")
		require.Contains(t, buf.String(), "visible")
	})

	t.Run("log file receives every level", func(t *testing.T) {
		var buf bytes.Buffer
		logFile := filepath.Join(t.TempDir(), "logs", "gitsplit.log")
		splog, err := output.NewSplogWithOptions(output.Options{Writer: &buf, LogFile: logFile})
		require.NoError(t, err)

		splog.Info("info line")
		splog.Debug("debug line")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "info line")
		require.Contains(t, string(data), "debug line")
		require.NotContains(t, buf.String(), "debug line")
	})

	t.Run("concurrent writes keep whole lines", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := output.NewSplogWithOptions(output.Options{Writer: &buf})
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				splog.Info("line")
			}()
		}
		wg.Wait()

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 20)
		for _, line := range lines {
			require.Equal(t, "line", line)
		}
	})
}

func TestStyle(t *testing.T) {
	output.SetColor(false)
	require.Equal(t, "pushed", output.Pushed("pushed"))
	require.Equal(t, "0123abcd", output.ShortSHA("0123abcdef0123abcdef"))
	require.Equal(t, "abc", output.ShortSHA("abc"))
}
