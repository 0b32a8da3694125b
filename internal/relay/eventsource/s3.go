package eventsource

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed s3-event.schema.json
var s3EventSchemaJSON []byte

var s3EventSchema = mustCompileS3EventSchema()

func mustCompileS3EventSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(s3EventSchemaJSON))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("s3-event.schema.json", doc); err != nil {
		panic(err)
	}
	sch, err := c.Compile("s3-event.schema.json")
	if err != nil {
		panic(err)
	}
	return sch
}

// s3Event mirrors the bucket-notification JSON posted by MinIO/S3.
type s3Event struct {
	Records []struct {
		EventName string `json:"eventName"`
		S3        struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key string `json:"key"`
			} `json:"object"`
		} `json:"s3"`
	} `json:"Records"`
}

// ParseS3Event validates a bucket-notification payload against the embedded
// schema and extracts one ObjectFinalized event per created object. Object
// keys arrive URL-encoded and are decoded here. Records for deletions and
// other non-create events are skipped.
func ParseS3Event(payload []byte) ([]ObjectFinalized, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedEvent, err)
	}
	if err := s3EventSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedEvent, err)
	}

	var ev s3Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedEvent, err)
	}

	var out []ObjectFinalized
	for _, rec := range ev.Records {
		if !strings.Contains(rec.EventName, "ObjectCreated") {
			continue
		}
		key, err := url.QueryUnescape(rec.S3.Object.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: bad object key %q", common.ErrMalformedEvent, rec.S3.Object.Key)
		}
		out = append(out, ObjectFinalized{Key: key})
	}
	return out, nil
}
