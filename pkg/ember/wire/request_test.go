package wire

import "testing"

func TestRequestFormValueBodyOverridesQuery(t *testing.T) {
	req := NewRequest()
	req.Query = "name=fromquery"
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Body = []byte("name=frombody")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	v, ok := req.FormValue("name")
	if !ok || v != "frombody" {
		t.Fatalf("got %q, %v, want frombody", v, ok)
	}
}

func TestRequestFormValueFallsBackToQuery(t *testing.T) {
	req := NewRequest()
	req.Query = "name=fromquery"
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	v, ok := req.FormValue("name")
	if !ok || v != "fromquery" {
		t.Fatalf("got %q, %v, want fromquery", v, ok)
	}
}

func TestRequestCookieAmpersandSplit(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Cookie", "a=1&b=2")
	if v, ok := req.Cookie("b"); !ok || v != "2" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestRequestCookieSemicolonSplit(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Cookie", "a=1; b=2")
	if v, ok := req.Cookie("b"); !ok || v != "2" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestRequestContentLength(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Content-Length", "42")
	if got := req.ContentLength(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestRequestContentLengthAbsent(t *testing.T) {
	req := NewRequest()
	if got := req.ContentLength(); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestRequestJSONParsesObject(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Content-Type", "application/json")
	req.Body = []byte(`{"name":"A","email":"a@example.com"}`)
	v, ok := req.JSON()
	if !ok {
		t.Fatal("want ok")
	}
	m, ok := v.(map[string]any)
	if !ok || m["email"] != "a@example.com" {
		t.Fatalf("got %#v", v)
	}
}

func TestRequestJSONAbsentForOtherContentType(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Body = []byte("name=A")
	if _, ok := req.JSON(); ok {
		t.Fatal("want absent for non-JSON content type")
	}
}

func TestRequestJSONAbsentOnMalformedBody(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Content-Type", "application/json")
	req.Body = []byte(`{not valid json`)
	if _, ok := req.JSON(); ok {
		t.Fatal("want absent on parse error, not a failed request")
	}
}

func TestRequestBindJSON(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Content-Type", "application/json")
	req.Body = []byte(`{"name":"A"}`)
	var v struct {
		Name string `json:"name"`
	}
	if err := req.BindJSON(&v); err != nil {
		t.Fatalf("BindJSON: %v", err)
	}
	if v.Name != "A" {
		t.Fatalf("got %q", v.Name)
	}
}

func TestRequestBindJSONWrongContentType(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Content-Type", "text/plain")
	req.Body = []byte(`{"name":"A"}`)
	var v struct{}
	if err := req.BindJSON(&v); err != ErrUnsupportedMediaType {
		t.Fatalf("got %v, want ErrUnsupportedMediaType", err)
	}
}

func TestRequestMultipartFile(t *testing.T) {
	req := NewRequest()
	req.Header.Set("Content-Type", `multipart/form-data; boundary=X`)
	req.Body = []byte("--X\r\n" +
		`Content-Disposition: form-data; name="field"` + "\r\n\r\nvalue\r\n" +
		"--X\r\n" +
		`Content-Disposition: form-data; name="file"; filename="a.txt"` + "\r\n" +
		"Content-Type: text/plain\r\n\r\ndata\r\n" +
		"--X--\r\n")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	if v, ok := req.FormValue("field"); !ok || v != "value" {
		t.Fatalf("got %q, %v", v, ok)
	}
	f, ok := req.File("file")
	if !ok || string(f.Data) != "data" || f.Filename != "a.txt" {
		t.Fatalf("got %+v, %v", f, ok)
	}
}
