package store

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const maxMillis = 999

// maxSecs is the largest seconds value that still fits in a time.Duration.
const maxSecs = uint64(math.MaxInt64 / int64(time.Second))

// maxMillisAtMaxSecs bounds the remainder when the seconds value is maxSecs.
const maxMillisAtMaxSecs = uint64(
	(math.MaxInt64 % int64(time.Second)) / int64(time.Millisecond),
)

// Duration is a duration split into whole seconds and a millisecond
// remainder. It is encoded as a two element JSON array.
type Duration struct {
	Secs   uint64
	Millis uint32
}

// Split converts d into a Duration. Sub-millisecond precision is truncated
// and negative values are treated as zero.
func Split(d time.Duration) Duration {
	if d < 0 {
		d = 0
	}

	return Duration{
		Secs:   uint64(d / time.Second),
		Millis: uint32((d % time.Second) / time.Millisecond),
	}
}

// Value converts the pair back into a time.Duration.
func (d Duration) Value() time.Duration {
	return time.Duration(d.Secs)*time.Second +
		time.Duration(d.Millis)*time.Millisecond
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal([]uint64{d.Secs, uint64(d.Millis)})
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var pair []uint64

	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf(
			"expected [seconds, milliseconds], got %d elements",
			len(pair),
		)
	}

	if pair[0] > maxSecs {
		return fmt.Errorf("seconds value %d is out of range", pair[0])
	}

	if pair[1] > maxMillis {
		return fmt.Errorf(
			"milliseconds value %d must be between 0 and %d",
			pair[1],
			maxMillis,
		)
	}

	if pair[0] == maxSecs && pair[1] > maxMillisAtMaxSecs {
		return fmt.Errorf(
			"duration [%d, %d] is out of range",
			pair[0],
			pair[1],
		)
	}

	d.Secs = pair[0]
	d.Millis = uint32(pair[1])

	return nil
}

// Document is the on-disk form of a session.
type Document struct {
	Completed uint64   `json:"completed"`
	Removed   uint64   `json:"removed"`
	Tasks     []string `json:"tasks"`
	BreakTime Duration `json:"break_time"`
	CurTask   Duration `json:"cur_task"`
	PrevTask  Duration `json:"prev_task"`
}

// rawDocument is used for decoding so that missing fields can be detected.
type rawDocument struct {
	Completed *uint64   `json:"completed"`
	Removed   *uint64   `json:"removed"`
	Tasks     *[]string `json:"tasks"`
	BreakTime *Duration `json:"break_time"`
	CurTask   *Duration `json:"cur_task"`
	PrevTask  *Duration `json:"prev_task"`
}

// Encode renders the document as indented JSON.
func Encode(doc *Document) ([]byte, error) {
	d := *doc
	if d.Tasks == nil {
		d.Tasks = []string{}
	}

	return json.MarshalIndent(&d, "", "    ")
}

// Decode parses a document. Every field is required.
func Decode(b []byte) (*Document, error) {
	var raw rawDocument

	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, ErrMalformed.Wrap(err)
	}

	missing := func(field string) error {
		return ErrMalformed.Wrap(fmt.Errorf("missing field %q", field))
	}

	switch {
	case raw.Completed == nil:
		return nil, missing("completed")
	case raw.Removed == nil:
		return nil, missing("removed")
	case raw.Tasks == nil:
		return nil, missing("tasks")
	case raw.BreakTime == nil:
		return nil, missing("break_time")
	case raw.CurTask == nil:
		return nil, missing("cur_task")
	case raw.PrevTask == nil:
		return nil, missing("prev_task")
	}

	return &Document{
		Completed: *raw.Completed,
		Removed:   *raw.Removed,
		Tasks:     *raw.Tasks,
		BreakTime: *raw.BreakTime,
		CurTask:   *raw.CurTask,
		PrevTask:  *raw.PrevTask,
	}, nil
}
