package eventsource

import (
	"errors"
	"testing"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minioEvent = `{
  "EventName": "s3:ObjectCreated:Put",
  "Key": "doorbell/pictures/20180327123000.jpg",
  "Records": [
    {
      "eventVersion": "2.0",
      "eventSource": "minio:s3",
      "eventName": "s3:ObjectCreated:Put",
      "s3": {
        "bucket": {"name": "doorbell"},
        "object": {"key": "pictures%2F20180327123000.jpg", "size": 52431}
      }
    }
  ]
}`

func TestParseS3Event_DecodesKey(t *testing.T) {
	events, err := ParseS3Event([]byte(minioEvent))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "pictures/20180327123000.jpg", events[0].Key)
}

func TestParseS3Event_SkipsNonCreateRecords(t *testing.T) {
	payload := []byte(`{
	  "Records": [
	    {"eventName": "s3:ObjectRemoved:Delete", "s3": {"object": {"key": "pictures%2Fold.jpg"}}},
	    {"eventName": "s3:ObjectCreated:Put", "s3": {"object": {"key": "pictures%2Fnew.jpg"}}}
	  ]
	}`)

	events, err := ParseS3Event(payload)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "pictures/new.jpg", events[0].Key)
}

func TestParseS3Event_SchemaViolations(t *testing.T) {
	cases := map[string][]byte{
		"not json":       []byte(`{`),
		"no records":     []byte(`{"Records": []}`),
		"missing key":    []byte(`{"Records": [{"eventName": "s3:ObjectCreated:Put", "s3": {"object": {}}}]}`),
		"records absent": []byte(`{"hello": "world"}`),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseS3Event(payload)
			if !errors.Is(err, common.ErrMalformedEvent) {
				t.Fatalf("want ErrMalformedEvent, got %v", err)
			}
		})
	}
}
