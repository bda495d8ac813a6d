package heredity

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/carbocation/pfx"
)

// openGoogleStorage reads an object named like gs://bucket/path/to/data.csv
// using the ambient application-default credentials.
func openGoogleStorage(path string) (io.ReadCloser, error) {
	bucket, object, found := strings.Cut(strings.TrimPrefix(path, "gs://"), "/")
	if !found || bucket == "" || object == "" {
		return nil, pfx.Err(fmt.Errorf("%q is not a valid gs://bucket/object path", path))
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rc, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return rc, nil
}
