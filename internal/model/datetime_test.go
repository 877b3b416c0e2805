package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTimeAcceptsWholeMinutes(t *testing.T) {
	var ct ClockTime
	require.NoError(t, json.Unmarshal([]byte(`"09:00"`), &ct))
	assert.Equal(t, 9, ct.Hour())
	assert.Equal(t, 0, ct.Minute())

	require.NoError(t, json.Unmarshal([]byte(`"14:30:00"`), &ct))
	assert.Equal(t, 14, ct.Hour())
	assert.Equal(t, 30, ct.Minute())
}

func TestClockTimeRejectsSubMinutePrecision(t *testing.T) {
	cases := []string{`"09:00:30"`, `"09:00:00.5"`, `"09:00:00.000000001"`}
	for _, c := range cases {
		var ct ClockTime
		assert.Error(t, json.Unmarshal([]byte(c), &ct), "input %s", c)
	}
}

func TestClockTimeRejectsGarbage(t *testing.T) {
	var ct ClockTime
	assert.Error(t, json.Unmarshal([]byte(`"not-a-time"`), &ct))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ct))
}

func TestClockTimeMarshal(t *testing.T) {
	b, err := json.Marshal(NewClockTime(9, 5))
	require.NoError(t, err)
	assert.Equal(t, `"09:05:00"`, string(b))
}

func TestDateRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-10"`), &d))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-10"`, string(b))
}

func TestDateRejectsOtherLayouts(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"10.01.2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2024-01-10T09:00:00Z"`), &d))
}

func TestVisitRequestBinding(t *testing.T) {
	var req VisitRequest
	body := `{"visitDate":"2024-01-10","visitTime":"09:00","place":"Ward 3","doctorId":5,"patientId":7}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	visit := req.ToVisit(0)
	assert.Equal(t, int64(5), visit.DoctorID)
	assert.Equal(t, int64(7), visit.PatientID)
	assert.True(t, visit.VisitDate.Equal(NewDate(2024, 1, 10)))
	assert.True(t, visit.VisitTime.Equal(NewClockTime(9, 0)))
}

func TestPageRounding(t *testing.T) {
	p := NewPage(nil, 0, 10, 21)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPage(nil, 1, 10, 20)
	assert.Equal(t, 2, p.TotalPages)

	p = NewPage(nil, 0, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
}
