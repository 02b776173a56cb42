package scores

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// WriteCSV writes entries as name,score,cubes,secs,time lines with the time
// in unix seconds. This is the format the game client merges as online scores.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	for _, e := range entries {
		record := []string{
			e.Name,
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Cubes),
			strconv.Itoa(e.SecondsPlayed),
			strconv.FormatInt(e.Time.Unix(), 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write score: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the WriteCSV format. Lines without exactly five fields are
// skipped. Every entry is marked online.
func ReadCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	entries := []Entry{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read scores: %v", err)
		}
		if len(record) != 5 {
			continue
		}

		var nums [4]int64
		ok := true
		for i, field := range record[1:] {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				ok = false
				break
			}
			nums[i] = v
		}
		if !ok {
			continue
		}

		entries = append(entries, Entry{
			Name:          record[0],
			Score:         int(nums[0]),
			Cubes:         int(nums[1]),
			SecondsPlayed: int(nums[2]),
			Time:          time.Unix(nums[3], 0),
			Online:        true,
		})
	}
	return entries, nil
}
