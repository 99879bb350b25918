package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/ui/view"
)

func TestAllTypes_ClosedSet(t *testing.T) {
	all := view.AllTypes()

	assert.Len(t, all, 16)
	for _, k := range all {
		assert.True(t, k.IsValid(), "kind %s has no classification", k)
		assert.NotEqual(t, "unknown", k.String())
	}
	assert.True(t, view.TypeNone.IsValid())
	assert.False(t, view.Type(1<<20).IsValid())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "group", view.TypeGroup.String())
	assert.Equal(t, "group|tab-bar", (view.TypeGroup | view.TypeTabBar).String())
	assert.Equal(t, "unknown", view.Type(1<<20).String())
}

func TestIconName(t *testing.T) {
	tests := []struct {
		button view.ButtonType
		scale  float64
		want   string
	}{
		{view.ButtonClose, 1, "close"},
		{view.ButtonClose, 1.5, "close-1.5x"},
		{view.ButtonMinimize, 2, "min-2x"},
		{view.ButtonMaximize, 1, "max"},
		{view.ButtonFloat, 1, "dock-float"},
		{view.ButtonNormal, 2, "dock-float-2x"},
		{view.ButtonAutoHide, 1, "auto-hide"},
		{view.ButtonUnautoHide, 1.25, "unauto-hide"},
		{view.ButtonType(42), 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, view.IconName(tt.button, tt.scale))
		})
	}
}

func TestNullFactory_CreatesNothing(t *testing.T) {
	var f view.Factory = view.NullFactory{}

	assert.Nil(t, f.CreateGroup(nil, nil))
	assert.Nil(t, f.CreateRubberBand(nil))
	assert.Nil(t, f.IconForButtonType(view.ButtonClose, 1))
}
