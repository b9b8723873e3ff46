package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// stageValue returns the value of the first stage with the given
// operator, or nil.
func stageValue(t *testing.T, pipeline []bson.D, operator string) any {
	t.Helper()
	for _, stage := range pipeline {
		require.Len(t, stage, 1)
		if stage[0].Key == operator {
			return stage[0].Value
		}
	}

	return nil
}

func TestBuildOrderPipeline_SingleDocumentHasNoPagination(t *testing.T) {
	pipeline := buildOrderPipeline(bson.M{"uid": int64(1234567890)}, 0, 0)

	assert.Equal(t, bson.M{"uid": int64(1234567890)}, stageValue(t, pipeline, "$match"))
	assert.Nil(t, stageValue(t, pipeline, "$sort"))
	assert.Nil(t, stageValue(t, pipeline, "$skip"))
	assert.Nil(t, stageValue(t, pipeline, "$limit"))
}

func TestBuildOrderPipeline_ListSortsNewestFirstThenPaginates(t *testing.T) {
	pipeline := buildOrderPipeline(bson.M{}, 50, 25)

	assert.Equal(t, bson.M{"order_date": -1}, stageValue(t, pipeline, "$sort"))
	assert.Equal(t, int64(50), stageValue(t, pipeline, "$skip"))
	assert.Equal(t, int64(25), stageValue(t, pipeline, "$limit"))

	// Pagination must come after the regroup so it counts orders, not lines.
	var groupIdx, sortIdx int
	for i, stage := range pipeline {
		switch stage[0].Key {
		case "$group":
			groupIdx = i
		case "$sort":
			sortIdx = i
		}
	}
	assert.Greater(t, sortIdx, groupIdx)
}

func TestBuildOrderPipeline_UnwindsPreserveEmptyOrders(t *testing.T) {
	pipeline := buildOrderPipeline(bson.M{}, 0, 0)

	var unwinds []bson.M
	for _, stage := range pipeline {
		if stage[0].Key == "$unwind" {
			unwind, ok := stage[0].Value.(bson.M)
			require.True(t, ok)
			unwinds = append(unwinds, unwind)
		}
	}

	require.Len(t, unwinds, 2)
	for _, unwind := range unwinds {
		assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
	}
}

func TestBuildOrderPipeline_RegroupKeepsScalarsAndPushesLines(t *testing.T) {
	pipeline := buildOrderPipeline(bson.M{}, 0, 0)

	group, ok := stageValue(t, pipeline, "$group").(bson.M)
	require.True(t, ok)

	assert.Equal(t, "$_id", group["_id"])
	assert.Equal(t, bson.M{"$push": "$products"}, group["products"])
	for _, scalar := range []string{"uid", "cid", "address_details", "payment_details", "order_date", "delivery_date", "status", "createdAt", "updatedAt"} {
		assert.Contains(t, group, scalar)
	}
}
