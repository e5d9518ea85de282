package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdiallo/stockroom/internal/domain/models"
)

func TestLowItems(t *testing.T) {
	svc := NewService(nil)

	stock := models.NewStock()
	stock.Set("apple", 15)

	assert.Equal(t, []string{}, svc.LowItems(stock, 15), "15 is not strictly below 15")
	assert.Equal(t, []string{"apple"}, svc.LowItems(stock, 16))
}

func TestLowItemsInsertionOrder(t *testing.T) {
	svc := NewService(nil)

	stock := models.NewStock()
	stock.Set("cherry", 2)
	stock.Set("apple", 50)
	stock.Set("banana", 1)
	stock.Set("pear", 3)

	assert.Equal(t, []string{"cherry", "banana", "pear"}, svc.LowItems(stock, DefaultLowThreshold))
}

func TestRenderEmpty(t *testing.T) {
	svc := NewService(nil)

	want := "--- Items Report ---\n" +
		"Inventory is empty.\n" +
		"--------------------"
	assert.Equal(t, want, svc.Render(models.NewStock()))
}

func TestRender(t *testing.T) {
	svc := NewService(nil)

	stock := models.NewStock()
	stock.Set("banana", 20)
	stock.Set("apple", 12)

	want := "--- Items Report ---\n" +
		"banana -> 20\n" +
		"apple -> 12\n" +
		"--------------------"
	assert.Equal(t, want, svc.Render(stock))
}
