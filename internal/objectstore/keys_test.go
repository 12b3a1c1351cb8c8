package objectstore

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLabelKey(t *testing.T) {
	at := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("CET", 3600))

	key := LabelKey(at, 2)
	assert.Regexp(t, regexp.MustCompile(`^labels/2024/03/01/[0-9a-f-]{36}-2\.pdf$`), key)
	assert.NotEqual(t, key, LabelKey(at, 2))
}
