//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// FilePart describes one file to place into a multipart submission.
type FilePart struct {
	Field     string
	Name      string
	MediaType string
	Data      []byte
}

// PerformRequest executes an HTTP request with an optional JSON body.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// PerformMultipartRequest executes a request carrying form fields and files.
func PerformMultipartRequest(t *testing.T, router *gin.Engine, method, path string, fields map[string]string, files []FilePart) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := BuildMultipartBody(t, fields, files)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// BuildMultipartBody assembles a multipart form body and its content type.
func BuildMultipartBody(t *testing.T, fields map[string]string, files []FilePart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Name+`"`)
		if f.MediaType != "" {
			header.Set("Content-Type", f.MediaType)
		}
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.Data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

// DecodeJSON unmarshals a recorded response body into out.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out),
		"response was not valid JSON: %s", w.Body.String())
}
