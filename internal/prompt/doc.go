// Package prompt reads validated answers from an interactive session.
//
// Each question is a loop around a Validator: the raw line is handed to the
// validator, an accepted value is returned, a rejected one prints the
// validator's message and asks again. There is no retry limit, so a session
// on a terminal only ends by answering or by killing the process. End of
// input is the single escape and surfaces as ErrNoInput, which is what lets
// tests and scripts drive the prompts with canned answers.
package prompt
