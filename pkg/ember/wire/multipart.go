package wire

import (
	"bytes"
	"strings"

	"github.com/yourusername/ember/pkg/ember/container"
	"github.com/yourusername/ember/pkg/ember/strutil"
)

// ParseMultipart decodes a multipart/form-data body, grounded on
// source/src/HttpRequest.cpp's splitMultipartData /
// parseContentDisposition / processMultipartPart.
//
// The body MUST begin with "--"+boundary+"\r\n"; a body that doesn't
// yields no parts at all (matching the reference's exact-prefix check
// rather than scanning for the first boundary occurrence).
func ParseMultipart(body []byte, boundary string) (forms *container.StringMap, files []UploadedFile) {
	forms = container.NewStringMap()

	opening := []byte("--" + boundary + "\r\n")
	if !bytes.HasPrefix(body, opening) {
		return forms, nil
	}

	closing := []byte("\r\n--" + boundary + "--\r\n")
	delimiter := []byte("\r\n--" + boundary)

	pos := len(opening)
	for {
		headerEnd := bytes.Index(body[pos:], []byte("\r\n\r\n"))
		if headerEnd < 0 {
			break
		}
		headerBlock := body[pos : pos+headerEnd]
		dataStart := pos + headerEnd + 4

		next := bytes.Index(body[dataStart:], delimiter)
		if next < 0 {
			break
		}
		data := body[dataStart : dataStart+next]

		attrs, contentType := parsePartHeaders(headerBlock)
		name := attrs["name"]
		if filename, ok := attrs["filename"]; ok {
			ct := contentType
			if ct == "" {
				ct = "application/octet-stream"
			}
			dup := make([]byte, len(data))
			copy(dup, data)
			files = append(files, UploadedFile{
				FieldName:   name,
				Filename:    filename,
				ContentType: ct,
				Data:        dup,
			})
		} else if name != "" {
			forms.Set(name, string(data))
		}

		afterData := dataStart + next
		if bytes.HasPrefix(body[afterData:], closing) {
			break
		}
		pos = afterData + 2 // past "\r\n", landing back on "--boundary..."
	}

	return forms, files
}

// parsePartHeaders parses a multipart part's header block (everything
// before the blank line), returning the Content-Disposition attribute
// map and the part's own Content-Type header, if any.
func parsePartHeaders(block []byte) (attrs map[string]string, contentType string) {
	attrs = map[string]string{}
	for _, line := range strings.Split(string(block), "\r\n") {
		if line == "" {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		key := strutil.Trim(line[:colon])
		value := strutil.Trim(line[colon+1:])
		if strings.EqualFold(key, "Content-Disposition") {
			attrs = parseContentDisposition(value)
		} else if strings.EqualFold(key, "Content-Type") {
			contentType = value
		}
	}
	return attrs, contentType
}

// parseContentDisposition parses a Content-Disposition header value
// ("form-data; name=\"field\"; filename=\"f.txt\"") into an attribute
// map, grounded on HttpRequest.cpp::parseContentDisposition: tokens
// are split on whitespace, each `key=value` pair has its trailing `;`
// stripped and its value unquoted.
func parseContentDisposition(value string) map[string]string {
	attrs := map[string]string{}
	for _, tok := range strings.Fields(value) {
		tok = strings.TrimSuffix(tok, ";")
		eq := strings.IndexByte(tok, '=')
		if eq < 0 {
			continue
		}
		key := tok[:eq]
		val := tok[eq+1:]
		val = strings.Trim(val, `"`)
		attrs[key] = val
	}
	return attrs
}
