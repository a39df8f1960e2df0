package structutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velkarn/plexus/structutil"
)

func TestMergeMaps_LaterWins(t *testing.T) {
	out := structutil.MergeMaps(
		map[string]interface{}{"a": 1, "b": 1},
		nil,
		map[string]interface{}{"b": 2, "c": 3},
	)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": 2, "c": 3}, out)
}

func TestMergeSlices_DedupByIdentity(t *testing.T) {
	type item struct{ id string }
	lists := [][]interface{}{
		{item{"x"}, item{"y"}},
		{item{"y"}, item{"z"}},
	}
	out := structutil.MergeSlices(lists, func(v interface{}) string {
		return v.(item).id
	})
	assert.Equal(t, []interface{}{item{"x"}, item{"y"}, item{"z"}}, out)

	// Without identity, plain concatenation.
	out = structutil.MergeSlices(lists, nil)
	assert.Len(t, out, 4)
}

func TestClone_DeepCopy(t *testing.T) {
	src := map[string]interface{}{
		"scalars": []interface{}{1, "two", 3.0, true},
		"nested":  map[string]interface{}{"k": []interface{}{"v"}},
	}
	cp := structutil.Clone(src).(map[string]interface{})
	assert.Equal(t, src, cp)

	// Mutating the copy must not touch the original.
	cp["nested"].(map[string]interface{})["k"].([]interface{})[0] = "changed"
	assert.Equal(t, "v", src["nested"].(map[string]interface{})["k"].([]interface{})[0])
}

func TestClone_Scalars(t *testing.T) {
	assert.Equal(t, 42, structutil.Clone(42))
	assert.Nil(t, structutil.Clone(nil))
}
