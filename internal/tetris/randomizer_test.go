package tetris

import "testing"

func TestUniformDeterministicAndValid(t *testing.T) {
	a, b := NewUniform(42), NewUniform(42)
	counts := map[Kind]int{}
	for i := 0; i < 7000; i++ {
		ka, kb := a.Next(), b.Next()
		if ka != kb {
			t.Fatalf("draw %d: %v != %v with the same seed", i, ka, kb)
		}
		if !ka.Valid() {
			t.Fatalf("draw %d: invalid kind %v", i, ka)
		}
		counts[ka]++
	}
	for _, k := range Kinds {
		if counts[k] < 700 {
			t.Errorf("%v drawn %d times out of 7000", k, counts[k])
		}
	}
}

func TestBagDealsEachKindOncePerBag(t *testing.T) {
	b := NewBag(3)
	for bag := 0; bag < 20; bag++ {
		seen := map[Kind]bool{}
		for i := 0; i < len(Kinds); i++ {
			k := b.Next()
			if seen[k] {
				t.Fatalf("bag %d: %v dealt twice", bag, k)
			}
			seen[k] = true
		}
	}
}

func TestNewRandomizer(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{RandomizerUniform, false},
		{RandomizerBag, false},
		{"tgm", true},
	}
	for _, tt := range tests {
		r, err := NewRandomizer(tt.name, 1)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewRandomizer(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err == nil && !r.Next().Valid() {
			t.Errorf("NewRandomizer(%q) produced an invalid kind", tt.name)
		}
	}
}
