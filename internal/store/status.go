package store

import (
	"fmt"
	"io"

	"github.com/huangsam/weightlog/schema"
)

// PrintStoreStatus prints store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	_, _ = fmt.Fprintf(w, "Total Samples: %d\n", status.TotalSamples)
	if status.TotalSamples > 0 {
		_, _ = fmt.Fprintf(w, "First Sample: %s\n", status.FirstSampleTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Last Sample: %s\n", status.LastSampleTime.Format("2006-01-02 15:04:05"))
	}
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Schema Version: %d\n", status.SchemaVersion)
	_, _ = fmt.Fprintf(w, "Table Size: %d bytes\n", status.TableSizeBytes)
}
