package wiki

import "testing"

func TestWaterCapacityFromTankRow(t *testing.T) {
	doc := parseDoc(t, `
		<table><tr><th>Tank Capacity</th><td>1,500 L</td></tr></table>`)

	if got := newTestExtractor().WaterCapacity(doc); got != 1500 {
		t.Fatalf("WaterCapacity=%d want=1500", got)
	}
}

func TestWaterCapacityLabeledWaterRow(t *testing.T) {
	doc := parseDoc(t, `
		<table><tr><th>Water Storage</th><td>250</td></tr></table>`)

	if got := newTestExtractor().WaterCapacity(doc); got != 250 {
		t.Fatalf("WaterCapacity=%d want=250", got)
	}
}

func TestWaterCapacityTakesMaxAcrossRows(t *testing.T) {
	doc := parseDoc(t, `
		<table>
			<tr><th>Water Capacity</th><td>100 L</td></tr>
			<tr><th>Liquid Tank</th><td>900 L</td></tr>
		</table>`)

	if got := newTestExtractor().WaterCapacity(doc); got != 900 {
		t.Fatalf("WaterCapacity=%d want=900", got)
	}
}

func TestWaterCapacityIgnoresUnitlessCapacity(t *testing.T) {
	// A bare "Capacity" row without a liter unit is inventory slots, not
	// water.
	doc := parseDoc(t, `
		<table><tr><th>Capacity</th><td>40 slots</td></tr></table>`)

	if got := newTestExtractor().WaterCapacity(doc); got != 0 {
		t.Fatalf("WaterCapacity=%d want=0", got)
	}
}

func TestWaterCapacityTextFallback(t *testing.T) {
	doc := parseDoc(t, `
		<p>The cistern provides water storage capacity of 500 L for a base.</p>`)

	if got := newTestExtractor().WaterCapacity(doc); got != 500 {
		t.Fatalf("WaterCapacity=%d want=500", got)
	}
}
