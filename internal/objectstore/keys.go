package objectstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("object not found")

// LabelKey builds a unique object key for a label PDF generated at.
func LabelKey(at time.Time, part int) string {
	return fmt.Sprintf("labels/%s/%s-%d.pdf", at.UTC().Format("2006/01/02"), uuid.NewString(), part)
}
