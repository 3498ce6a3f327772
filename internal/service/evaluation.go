package service

import (
	"regexp"
	"strings"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/tidwall/gjson"
)

var fencePattern = regexp.MustCompile("(?m)^```(?:json|JSON)?|```$")

// StripFences removes markdown code fences wrapped around a model reply.
func StripFences(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(strings.TrimSpace(text), ""))
}

// ParseEvaluation reads an evaluator reply. ok is false when the reply is not
// a JSON object; the returned evaluation is then the neutral default.
func ParseEvaluation(text string) (eval model.Evaluation, ok bool) {
	cleaned := StripFences(text)
	if !gjson.Valid(cleaned) {
		return model.NeutralEvaluation(), false
	}
	res := gjson.Parse(cleaned)
	if !res.IsObject() {
		return model.NeutralEvaluation(), false
	}

	eval = model.NeutralEvaluation()
	if score := res.Get("score"); score.Type == gjson.Number {
		v := score.Float()
		eval.Score = &v
	}
	eval.Strengths = stringList(res.Get("strengths"))
	eval.Weaknesses = stringList(res.Get("weaknesses"))
	if fb := res.Get("feedback"); fb.Type == gjson.String {
		eval.Feedback = fb.String()
	}
	return eval, true
}

func stringList(res gjson.Result) []string {
	out := []string{}
	if !res.IsArray() {
		return out
	}
	for _, item := range res.Array() {
		if item.Type == gjson.Null {
			continue
		}
		out = append(out, item.String())
	}
	return out
}
