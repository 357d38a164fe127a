package shape

import "testing"

func TestArea(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  float32
	}{
		{"square", Square{Side: 3}, 9},
		{"rectangle", Rectangle{Width: 2, Height: 5}, 10},
		{"triangle", Triangle{Base: 4, Height: 6}, 12},
		// 没有π，面积就是radius²
		{"circle", Circle{Radius: 2}, 4},
		{"zero square", Square{}, 0},
		{"negative rectangle", Rectangle{Width: -2, Height: 3}, -6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		shape Shape
		kind  Kind
		name  string
	}{
		{Square{}, KindSquare, "square"},
		{Rectangle{}, KindRectangle, "rectangle"},
		{Triangle{}, KindTriangle, "triangle"},
		{Circle{}, KindCircle, "circle"},
	}
	for _, tt := range tests {
		if got := tt.shape.Kind(); got != tt.kind {
			t.Errorf("%T.Kind() = %v, want %v", tt.shape, got, tt.kind)
		}
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.name)
		}
	}
	if got := Kind(KindCount).String(); got != "Kind(4)" {
		t.Errorf("out of range kind String() = %q", got)
	}
}

func TestSumScenario(t *testing.T) {
	shapes := []Shape{
		Square{Side: 2},
		Rectangle{Width: 3, Height: 4},
		Triangle{Base: 5, Height: 2},
		Circle{Radius: 3},
	}
	if got := Sum(shapes); got != 30 {
		t.Fatalf("Sum() = %v, want 30", got)
	}
	if got := Sum(nil); got != 0 {
		t.Fatalf("Sum(nil) = %v, want 0", got)
	}
}
