package services

import (
	"io"

	tcmp3 "github.com/tcolgate/mp3"
)

// MP3Duration sums the frame durations of an MP3 stream, in seconds.
func MP3Duration(r io.Reader) (float64, error) {
	var (
		dur     float64
		dec     = tcmp3.NewDecoder(r)
		frame   tcmp3.Frame
		skipped int
	)

	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		dur += frame.Duration().Seconds()
	}

	return dur, nil
}
