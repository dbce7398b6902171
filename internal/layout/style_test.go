package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"receipt-encoder/pkg/driver"
)

func TestStyleEmitsOnlyChanges(t *testing.T) {
	var events []driver.Item
	style := NewStyle(func(item driver.Item) {
		events = append(events, item)
	})

	style.SetBold(true)
	style.SetBold(true)
	style.SetItalic(false)
	style.SetUnderline(true)

	assert.Equal(t, []driver.Item{
		driver.StyleItem(driver.StyleBold, true),
		driver.StyleItem(driver.StyleUnderline, true),
	}, events)
	assert.True(t, style.Bold())
	assert.False(t, style.Italic())
}

func TestStyleSizeIsReportedJointly(t *testing.T) {
	var events []driver.Item
	style := NewStyle(func(item driver.Item) {
		events = append(events, item)
	})

	style.SetWidth(2)
	style.SetWidth(2)
	style.SetHeight(3)

	assert.Equal(t, []driver.Item{
		driver.SizeItem(2, 1),
		driver.SizeItem(2, 3),
	}, events)
}

func TestStyleStoreRestore(t *testing.T) {
	style := NewStyle(nil)

	assert.Empty(t, style.Store())
	assert.Empty(t, style.Restore())

	style.SetBold(true)
	style.SetInvert(true)
	style.SetWidth(2)
	style.SetHeight(2)

	assert.Equal(t, []driver.Item{
		driver.StyleItem(driver.StyleBold, false),
		driver.StyleItem(driver.StyleInvert, false),
		driver.SizeItem(1, 1),
	}, style.Store())

	assert.Equal(t, []driver.Item{
		driver.StyleItem(driver.StyleBold, true),
		driver.StyleItem(driver.StyleInvert, true),
		driver.SizeItem(2, 2),
	}, style.Restore())
}

func TestStyleAcceptsUncheckedSizes(t *testing.T) {
	style := NewStyle(nil)
	style.SetWidth(12)
	assert.Equal(t, 12, style.Width())
}
