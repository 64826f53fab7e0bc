package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testProperty struct {
	ID   string
	Name string
}

type testRoom struct {
	ID         string
	PropertyID string
	Number     string
	Status     string
}

type testPayment struct {
	ID     string
	Amount float64
	Status string
}

func TestLookupLabel(t *testing.T) {
	properties := []testProperty{
		{ID: "p1", Name: "Kost A"},
		{ID: "p2", Name: "Kost B"},
	}

	label := LookupLabel(properties, "p1",
		func(p testProperty) string { return p.ID },
		func(p testProperty) string { return p.Name },
		"Unknown")
	assert.Equal(t, "Kost A", label)

	// A dangling foreign key resolves to the fallback, not an error
	label = LookupLabel(properties, "p9",
		func(p testProperty) string { return p.ID },
		func(p testProperty) string { return p.Name },
		"Unknown")
	assert.Equal(t, "Unknown", label)
}

func TestDependentOptions(t *testing.T) {
	rooms := []testRoom{
		{ID: "r1", PropertyID: "p1", Number: "101"},
		{ID: "r2", PropertyID: "p1", Number: "102"},
		{ID: "r3", PropertyID: "p2", Number: "201"},
	}

	fk := func(r testRoom) string { return r.PropertyID }

	// Selecting Kost A narrows the room options to its own rooms
	set := DependentOptions(rooms, "p1", fk)
	assert.False(t, set.Disabled)
	assert.Len(t, set.Items, 2)
	assert.Equal(t, "101", set.Items[0].Number)
	assert.Equal(t, "102", set.Items[1].Number)

	// No parent selection disables the selector with zero options
	set = DependentOptions(rooms, "", fk)
	assert.True(t, set.Disabled)
	assert.Empty(t, set.Items)

	// A parent with no children is enabled but empty
	set = DependentOptions(rooms, "p3", fk)
	assert.False(t, set.Disabled)
	assert.Empty(t, set.Items)
}

func TestPartitionByStatus(t *testing.T) {
	payments := []testPayment{
		{ID: "1", Amount: 500000, Status: "approved"},
		{ID: "2", Amount: 300000, Status: "pending"},
		{ID: "3", Amount: 200000, Status: "approved"},
		{ID: "4", Amount: 100000, Status: "weird"},
		{ID: "5", Amount: 50000, Status: ""},
	}

	known := []string{"pending", "approved", "rejected"}
	buckets := PartitionByStatus(payments,
		func(p testPayment) string { return p.Status },
		known, "pending")

	assert.Len(t, buckets["approved"], 2)
	assert.Len(t, buckets["rejected"], 0)

	// Unknown and empty statuses land in the default bucket, never dropped
	assert.Len(t, buckets["pending"], 3)

	total := 0
	for _, b := range buckets {
		total += len(b)
	}
	assert.Equal(t, len(payments), total)
}

func TestSumWhere(t *testing.T) {
	payments := []testPayment{
		{Amount: 500000, Status: "approved"},
		{Amount: 300000, Status: "approved"},
		{Amount: 200000, Status: "pending"},
	}

	approved := func(p testPayment) bool { return p.Status == "approved" }
	amount := func(p testPayment) float64 { return p.Amount }

	assert.Equal(t, 800000.0, SumWhere(payments, approved, amount))
	assert.Equal(t, 2, CountWhere(payments, approved))

	// Empty input sums to zero
	assert.Equal(t, 0.0, SumWhere(nil, approved, amount))
	assert.Equal(t, 0, CountWhere(nil, approved))
}

func TestMeterUsage(t *testing.T) {
	assert.Equal(t, 50.0, MeterUsage(150, 100))
	assert.Equal(t, 0.0, MeterUsage(100, 100))
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 50.0, OccupancyRate(1, 2))
	assert.Equal(t, 66.67, OccupancyRate(2, 3))
	assert.Equal(t, 100.0, OccupancyRate(3, 3))

	// No rooms means zero occupancy, not a division error
	assert.Equal(t, 0.0, OccupancyRate(0, 0))
}
