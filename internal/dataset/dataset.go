package dataset

import "math/rand"

// Message is one turn of a chat-format fine-tuning record.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Example is the unit written to the JSONL outputs: a
// system/user/assistant triplet in the fine-tuning wire format.
type Example struct {
	Messages []Message `json:"messages"`
}

// Split holds the partitioned dataset. Every example belongs to
// exactly one side.
type Split struct {
	Training   []Example
	Validation []Example
}

const assistantInstruction = "You are an assistant that writes social media posts matching the speaker's authentic voice and style."

// Topics is the fixed pool post prompts are sampled from.
var Topics = []string{
	"industry insights", "professional growth", "innovation", "leadership",
	"technology trends", "workplace culture", "success stories", "team building",
	"market analysis", "future predictions", "personal development",
	"problem solving", "change management", "strategic thinking",
}

// NewExample builds one fine-tuning record for a generated post.
func NewExample(topic, post string) Example {
	return Example{
		Messages: []Message{
			{Role: "system", Content: assistantInstruction},
			{Role: "user", Content: "Write a social media post about " + topic},
			{Role: "assistant", Content: post},
		},
	}
}

// Validate checks an example has exactly the system/user/assistant
// shape with content in every turn.
func Validate(ex Example) bool {
	if len(ex.Messages) != 3 {
		return false
	}
	roles := []string{"system", "user", "assistant"}
	for i, msg := range ex.Messages {
		if msg.Role != roles[i] || msg.Content == "" {
			return false
		}
	}
	return true
}

// SampleTopics picks k distinct topics from the pool. Asking for more
// topics than exist returns the whole pool shuffled.
func SampleTopics(rng *rand.Rand, k int) []string {
	if k > len(Topics) {
		k = len(Topics)
	}
	perm := rng.Perm(len(Topics))
	topics := make([]string, 0, k)
	for _, i := range perm[:k] {
		topics = append(topics, Topics[i])
	}
	return topics
}

// Shuffle randomizes example order in place so the split does not
// inherit file-enumeration bias.
func Shuffle(examples []Example, rng *rand.Rand) {
	rng.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}

// SplitExamples partitions examples at floor(ratio*N): the first part
// trains, the rest validates. With fewer than two examples the
// validation side may be empty, which is fine.
func SplitExamples(examples []Example, ratio float64) Split {
	boundary := int(ratio * float64(len(examples)))
	return Split{
		Training:   examples[:boundary],
		Validation: examples[boundary:],
	}
}
