package dataset

import (
	"fmt"
	"math/rand"
	"testing"
)

func makeExamples(n int) []Example {
	examples := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		examples = append(examples, NewExample("innovation", fmt.Sprintf("post %d", i)))
	}
	return examples
}

func TestSplitExamples(t *testing.T) {
	tests := []struct {
		n         int
		wantTrain int
		wantValid int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 1},
		{5, 4, 1},
		{10, 8, 2},
		{13, 10, 3},
		{100, 80, 20},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			split := SplitExamples(makeExamples(tt.n), 0.8)
			if len(split.Training) != tt.wantTrain {
				t.Errorf("training = %d, want %d", len(split.Training), tt.wantTrain)
			}
			if len(split.Validation) != tt.wantValid {
				t.Errorf("validation = %d, want %d", len(split.Validation), tt.wantValid)
			}
			if len(split.Training)+len(split.Validation) != tt.n {
				t.Errorf("split drops examples: %d + %d != %d",
					len(split.Training), len(split.Validation), tt.n)
			}
		})
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := makeExamples(20)
	b := makeExamples(20)

	Shuffle(a, rand.New(rand.NewSource(42)))
	Shuffle(b, rand.New(rand.NewSource(42)))

	for i := range a {
		if a[i].Messages[2].Content != b[i].Messages[2].Content {
			t.Fatalf("same seed produced different orders at %d", i)
		}
	}
}

func TestShufflePreservesExamples(t *testing.T) {
	examples := makeExamples(10)
	seen := make(map[string]bool)

	Shuffle(examples, rand.New(rand.NewSource(1)))
	for _, ex := range examples {
		seen[ex.Messages[2].Content] = true
	}
	if len(seen) != 10 {
		t.Errorf("shuffle lost examples: %d unique, want 10", len(seen))
	}
}

func TestSampleTopics(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	topics := SampleTopics(rng, 5)
	if len(topics) != 5 {
		t.Fatalf("len = %d, want 5", len(topics))
	}

	seen := make(map[string]bool)
	for _, topic := range topics {
		if seen[topic] {
			t.Errorf("duplicate topic %q", topic)
		}
		seen[topic] = true
	}

	// Asking for more than the pool holds caps at the pool size
	all := SampleTopics(rng, 100)
	if len(all) != len(Topics) {
		t.Errorf("len = %d, want %d", len(all), len(Topics))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		ex   Example
		want bool
	}{
		{"valid", NewExample("innovation", "a post"), true},
		{"empty assistant content", NewExample("innovation", ""), false},
		{"no messages", Example{}, false},
		{
			"wrong role order",
			Example{Messages: []Message{
				{Role: "user", Content: "a"},
				{Role: "system", Content: "b"},
				{Role: "assistant", Content: "c"},
			}},
			false,
		},
		{
			"too many messages",
			Example{Messages: []Message{
				{Role: "system", Content: "a"},
				{Role: "user", Content: "b"},
				{Role: "assistant", Content: "c"},
				{Role: "user", Content: "d"},
			}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.ex); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
