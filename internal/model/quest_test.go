package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestConditionUnmarshal(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want QuestCondition
	}

	testCases := []testCase{
		{
			name: "flat layout",
			raw:  `{"id": "c1", "conditionType": "HandoverItem", "target": ["5c06779c86f77426e00dd782"], "value": 5, "onlyFoundInRaid": true}`,
			want: QuestCondition{ID: "c1", ConditionType: ConditionTypeHandoverItem, Target: StringList{"5c06779c86f77426e00dd782"}, Value: 5, OnlyFoundInRaid: true},
		},
		{
			name: "legacy parent and props",
			raw:  `{"_parent": "LeaveItemAtLocation", "_props": {"id": "c2", "target": ["57347c5b245977448d35f6e1"], "value": "2"}}`,
			want: QuestCondition{ID: "c2", ConditionType: ConditionTypeLeaveItemAtLocation, Target: StringList{"57347c5b245977448d35f6e1"}, Value: 2},
		},
		{
			name: "single string target",
			raw:  `{"id": "c3", "conditionType": "HandoverItem", "target": "5c06779c86f77426e00dd782", "value": 1}`,
			want: QuestCondition{ID: "c3", ConditionType: ConditionTypeHandoverItem, Target: StringList{"5c06779c86f77426e00dd782"}, Value: 1},
		},
		{
			name: "empty string target",
			raw:  `{"id": "c4", "conditionType": "Counter", "target": "", "value": 0}`,
			want: QuestCondition{ID: "c4", ConditionType: "Counter"},
		},
		{
			name: "props without parent is flat",
			raw:  `{"id": "c5", "conditionType": "WeaponAssembly", "_props": {"id": "ignored"}, "value": 1}`,
			want: QuestCondition{ID: "c5", ConditionType: ConditionTypeWeaponAssembly, Value: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got QuestCondition
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAmountUnmarshal(t *testing.T) {
	type testCase struct {
		raw  string
		want Amount
	}

	testCases := []testCase{
		{raw: `5`, want: 5},
		{raw: `5.9`, want: 5},
		{raw: `"5"`, want: 5},
		{raw: `"5.0"`, want: 5},
		{raw: `" 12 "`, want: 12},
		{raw: `"many"`, want: 0},
		{raw: `true`, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			a := Amount(-1)
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &a))
			assert.Equal(t, tc.want, a)
		})
	}
}

func TestQuestUnmarshal(t *testing.T) {
	raw := `{
	  "_id": "5936d90786f7742b1420ba5b",
	  "conditions": {
	    "AvailableForFinish": [
	      {"id": "c1", "conditionType": "HandoverItem", "target": ["5c06779c86f77426e00dd782"], "value": "3"},
	      {"_parent": "HandoverItem", "_props": {"id": "c2", "target": "57347c5b245977448d35f6e1", "value": 1}}
	    ]
	  }
	}`

	var q Quest
	require.NoError(t, json.Unmarshal([]byte(raw), &q))
	assert.Equal(t, "5936d90786f7742b1420ba5b", q.ID)
	require.Len(t, q.Conditions.AvailableForFinish, 2)
	assert.Equal(t, Amount(3), q.Conditions.AvailableForFinish[0].Value)
	assert.Equal(t, ConditionTypeHandoverItem, q.Conditions.AvailableForFinish[1].ConditionType)
	assert.Equal(t, StringList{"57347c5b245977448d35f6e1"}, q.Conditions.AvailableForFinish[1].Target)
}
