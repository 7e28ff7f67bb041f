package wadsdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Price
		ok   bool
	}{
		{`7.5`, 7.5, true},
		{`"7.5"`, 7.5, true},
		{`" 12 "`, 0, false},
		{`"abc"`, 0, false},
		{`true`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.in), &p)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, p)
		})
	}
}

func TestSessionSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/profile", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"Unauthorized"}`)
			return
		}
		_, _ = io.WriteString(w, `{"_id":"1","firstname":"Ada","lastname":"L","email":"a@b.c","profileImage":null}`)
	}))
	defer srv.Close()

	c := NewSDKClient(srv.URL + "/")

	p, err := c.NewSession("tok").GetProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Ada", p.Firstname)
	require.Nil(t, p.ProfileImage)

	_, err = c.NewSession("bad").GetProfile(context.Background())
	require.True(t, IsUnauthorized(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Unauthorized", apiErr.Message)
}

func TestUploadImageSendsPartContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		require.Equal(t, "image/png", fh.Header.Get("Content-Type"))
		b, _ := io.ReadAll(f)
		require.Equal(t, "png-bytes", string(b))

		_, _ = io.WriteString(w, `{"imageUrl":"/profile-images/x.png"}`)
	}))
	defer srv.Close()

	c := NewSDKClient(srv.URL)
	path, err := c.NewSession("tok").UploadImage(context.Background(), "a.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "/profile-images/x.png", path)
}

func TestErrorWithoutMessageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewSDKClient(srv.URL).DeleteUser(context.Background(), "abc")
	require.True(t, IsNotFound(err))
	require.Contains(t, err.Error(), "Not Found")
}

func TestPageQuery(t *testing.T) {
	require.Equal(t, "", pageQuery(0, 0))
	require.Equal(t, "?limit=5&page=2", pageQuery(2, 5))
}
