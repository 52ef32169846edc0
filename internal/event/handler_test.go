package event

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/events/1", nil)
	if value != "" {
		r.AddCookie(&http.Cookie{Name: recentCookie, Value: value})
	}
	return r
}

func TestRecentVisits(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		want   []int64
	}{
		{name: "no cookie", cookie: "", want: nil},
		{name: "single entry", cookie: "7", want: []int64{7}},
		{name: "multiple entries", cookie: "3.1.4", want: []int64{3, 1, 4}},
		{name: "malformed entries skipped", cookie: "3.x.-1.4", want: []int64{3, 4}},
		{name: "garbage only", cookie: "abc", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recentVisits(requestWithCookie(tt.cookie)))
		})
	}
}

func TestRememberVisit(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name   string
		cookie string
		visit  int64
		want   string
	}{
		{name: "first visit", cookie: "", visit: 7, want: "7"},
		{name: "prepends newest", cookie: "3.1", visit: 7, want: "7.3.1"},
		{name: "revisit moves to front", cookie: "3.7.1", visit: 7, want: "7.3.1"},
		{name: "caps at five entries", cookie: "1.2.3.4.5", visit: 7, want: "7.1.2.3.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.rememberVisit(w, requestWithCookie(tt.cookie), tt.visit)

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, recentCookie, cookies[0].Name)
			assert.Equal(t, tt.want, cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}
