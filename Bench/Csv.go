package Bench

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
)

// Write writes results as CSV rows "algorithm, workload, n, seconds"
// with no header and scientific notation for the timings, so files from
// separate runs concatenate cleanly.
func Write(w io.Writer, results ...Result) error {
	cw := csv.NewWriter(w)
	for _, r := range results {
		err := cw.Write([]string{
			r.Algorithm,
			r.Workload,
			strconv.Itoa(r.N),
			strconv.FormatFloat(r.Seconds, 'e', 10, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Append appends results to the CSV file at path, creating it if absent.
// Appending rather than truncating lets interrupted suites be resumed.
func Append(path string, results ...Result) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return errors.Join(Write(f, results...), f.Close())
}
