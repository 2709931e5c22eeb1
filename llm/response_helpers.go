package llm

import "fmt"

// FirstChoice safely returns the first choice from a ChatResponse.
// Returns an error if the response is nil or has no choices.
func FirstChoice(resp *ChatResponse) (ChatChoice, error) {
	if resp == nil {
		return ChatChoice{}, fmt.Errorf("nil ChatResponse")
	}
	if len(resp.Choices) == 0 {
		return ChatChoice{}, fmt.Errorf("empty choices in ChatResponse (model returned no choices)")
	}
	return resp.Choices[0], nil
}

// Text returns the content of the first choice, or "" when the model
// produced no candidates at all.
func Text(resp *ChatResponse) string {
	choice, err := FirstChoice(resp)
	if err != nil {
		return ""
	}
	return choice.Message.Content
}
