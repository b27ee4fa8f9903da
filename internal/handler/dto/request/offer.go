package request

import (
	"encoding/json"
	"mime/multipart"
	"strings"

	"offers-service/internal/domain/offer"
	"offers-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Recognized file part fields; anything else uploaded is ignored.
var attachmentKinds = []commands.AttachmentKind{
	commands.AttachmentAvatar,
	commands.AttachmentPreview,
}

// OfferSubmission reads an offer submission from either a multipart form or a
// JSON body into the untyped field map the pipeline starts from, plus any
// extracted attachments. Callers own the attachments and must Close them.
func OfferSubmission(c *gin.Context) (map[string]string, []commands.Attachment, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, &offer.ValidationError{Violations: []offer.Violation{
				{Field: "body", Reason: "must be a well-formed multipart form"},
			}}
		}

		fields := make(map[string]string, len(form.Value))
		for name, values := range form.Value {
			if len(values) > 0 {
				fields[name] = values[0]
			}
		}

		attachments, err := ExtractAttachments(form)
		if err != nil {
			return nil, nil, err
		}
		return fields, attachments, nil
	}

	return jsonSubmission(c)
}

// ExtractAttachments pulls at most one part per recognized field. Extra parts
// under a recognized field are silently dropped (first wins); media type and
// size are not checked here.
func ExtractAttachments(form *multipart.Form) ([]commands.Attachment, error) {
	var attachments []commands.Attachment
	for _, kind := range attachmentKinds {
		headers := form.File[string(kind)]
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]
		f, err := fh.Open()
		if err != nil {
			for i := range attachments {
				_ = attachments[i].Close()
			}
			return nil, &offer.ValidationError{Violations: []offer.Violation{
				{Field: string(kind), Reason: "could not be read from the form"},
			}}
		}
		attachments = append(attachments, commands.Attachment{
			Kind:      kind,
			Name:      fh.Filename,
			MediaType: fh.Header.Get("Content-Type"),
			Source:    commands.NewByteSource(f),
		})
	}
	return attachments, nil
}

func jsonSubmission(c *gin.Context) (map[string]string, []commands.Attachment, error) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, nil, &offer.ValidationError{Violations: []offer.Violation{
			{Field: "body", Reason: "must be a well-formed JSON object"},
		}}
	}

	fields := make(map[string]string, len(body))
	for name, value := range body {
		switch v := value.(type) {
		case string:
			fields[name] = v
		case json.Number:
			fields[name] = v.String()
		case bool:
			if v {
				fields[name] = "true"
			} else {
				fields[name] = "false"
			}
		}
		// nested objects/arrays are dropped; the pipeline only knows scalars
	}
	return fields, nil, nil
}
