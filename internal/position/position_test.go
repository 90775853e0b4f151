package position

import (
	"reflect"
	"testing"
)

func TestReorder(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		from int
		to   int
		want []string
	}{
		{
			name: "stable move forward",
			in:   []string{"A", "B", "C", "D"},
			from: 0,
			to:   2,
			want: []string{"B", "C", "A", "D"},
		},
		{
			name: "stable move backward",
			in:   []string{"A", "B", "C", "D"},
			from: 3,
			to:   1,
			want: []string{"A", "D", "B", "C"},
		},
		{
			name: "move to tail",
			in:   []string{"A", "B", "C"},
			from: 0,
			to:   2,
			want: []string{"B", "C", "A"},
		},
		{
			name: "move one past the end clamps to tail",
			in:   []string{"A", "B", "C"},
			from: 0,
			to:   3,
			want: []string{"B", "C", "A"},
		},
		{
			name: "same index is a no-op",
			in:   []string{"A", "B", "C"},
			from: 1,
			to:   1,
			want: []string{"A", "B", "C"},
		},
		{
			name: "out of range from is a no-op",
			in:   []string{"A", "B"},
			from: 5,
			to:   0,
			want: []string{"A", "B"},
		},
		{
			name: "negative to clamps to head",
			in:   []string{"A", "B", "C"},
			from: 2,
			to:   -1,
			want: []string{"C", "A", "B"},
		},
		{
			name: "single element",
			in:   []string{"A"},
			from: 0,
			to:   0,
			want: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reorder(tt.in, tt.from, tt.to)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Reorder(%v, %d, %d) = %v, want %v", tt.in, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	in := []string{"A", "B", "C", "D"}
	Reorder(in, 0, 2)
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(in, want) {
		t.Errorf("input mutated: got %v, want %v", in, want)
	}
}

func TestRemove(t *testing.T) {
	got := Remove([]int{1, 2, 3}, 1)
	if !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Remove = %v, want [1 3]", got)
	}

	in := []int{1, 2}
	if got := Remove(in, 7); !reflect.DeepEqual(got, in) {
		t.Errorf("out-of-range Remove = %v, want %v", got, in)
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		v    int
		i    int
		want []int
	}{
		{name: "at head", in: []int{2, 3}, v: 1, i: 0, want: []int{1, 2, 3}},
		{name: "in middle", in: []int{1, 3}, v: 2, i: 1, want: []int{1, 2, 3}},
		{name: "at tail", in: []int{1, 2}, v: 3, i: 2, want: []int{1, 2, 3}},
		{name: "past the end appends", in: []int{1, 2}, v: 3, i: 99, want: []int{1, 2, 3}},
		{name: "negative clamps to head", in: []int{2}, v: 1, i: -3, want: []int{1, 2}},
		{name: "empty list", in: nil, v: 1, i: 0, want: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insert(tt.in, tt.v, tt.i)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Insert(%v, %d, %d) = %v, want %v", tt.in, tt.v, tt.i, got, tt.want)
			}
		})
	}
}
