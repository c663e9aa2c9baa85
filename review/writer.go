package review

import (
	"fmt"
	"os"

	"github.com/jeremyhunt/empathetic-reviewer/logger"
)

// WriteReport creates or truncates path and writes the report to it
func WriteReport(path, report string) error {
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	logger.Success("Wrote %s", path)
	return nil
}
