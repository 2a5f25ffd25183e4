package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d.String())
	assert.Equal(t, NewDate(2024, time.March, 9), d)

	_, err = ParseDate("09/03/2024")
	assert.Error(t, err)
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	d := DateOf(time.Date(2024, time.December, 31, 23, 30, 0, 0, loc))
	assert.Equal(t, "2024-12-31", d.String())
}

func TestDateJSON(t *testing.T) {
	var v struct {
		D  Date  `json:"d"`
		P  *Date `json:"p"`
		NP *Date `json:"np"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2023-01-02","p":"2023-05-06","np":null}`), &v))
	assert.Equal(t, "2023-01-02", v.D.String())
	require.NotNil(t, v.P)
	assert.Equal(t, "2023-05-06", v.P.String())
	assert.Nil(t, v.NP)

	out, err := json.Marshal(v.D)
	require.NoError(t, err)
	assert.JSONEq(t, `"2023-01-02"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"d":"tomorrow"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"d":20230102}`), &v))
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{name: "text", src: "2022-07-04", want: "2022-07-04"},
		{name: "bytes", src: []byte("2022-07-04"), want: "2022-07-04"},
		{name: "text with time", src: "2022-07-04T00:00:00Z", want: "2022-07-04"},
		{name: "time", src: time.Date(2022, time.July, 4, 0, 0, 0, 0, time.UTC), want: "2022-07-04"},
		{name: "nil", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2021, time.February, 3).Value()
	require.NoError(t, err)
	assert.Equal(t, "2021-02-03", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
