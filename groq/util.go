package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// jwpost performs an HTTP POST of the JSON-encoded payload to the given
// address, authenticated with a bearer token, and unmarshals the JSON
// response body into the provided data structure. It uses the provided
// http.Client for the request.
func jwpost(ctx context.Context, client *http.Client, addr, token string, payload, data any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		if msg := errorDescriptor(buf.Bytes()); msg != "" {
			return fmt.Errorf("cannot http POST %v/%v: %v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status, msg)
		}
		return fmt.Errorf("cannot http POST %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// errorDescriptor extracts the message a chat completions server puts in the
// error member of a failure body, or "" when the body carries none.
func errorDescriptor(body []byte) string {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return ""
	}
	jval, err := jsonpath.Get("$.error.message", jobj)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	msg, _ := jval.(string)
	return msg
}
