package service

import "fmt"

const evaluationSystemPrompt = "You are an AI evaluator for technical mock interviews."

func buildEvaluationPrompt(question, answer string) string {
	return fmt.Sprintf(`
You are an AI evaluator.
Question: %s
Candidate's Answer: %s

Task:
- Give a score from 0-10
- List 2 strengths
- List 2 weaknesses

Return strictly in JSON format:
{
	"score": <int>,
	"strengths": ["..", ".."],
	"weaknesses": ["..", ".."]
}
`, question, answer)
}

const generationSystemPrompt = "You are an AI mock interviewer."

func buildGenerationPrompt(techStack, keywords string, yoe, count int) string {
	return fmt.Sprintf(`
You are an AI mock interviewer.
Generate %d structured interview questions for a candidate.

Candidate details:
- Tech stack: %s
- Keywords: %s
- Years of experience: %d

Rules:
- For fresher (0-1 YOE): focus on basics + medium difficulty.
- For 2-3 YOE: mix medium + advanced questions.
- For 4+ YOE: focus on advanced, scenario-based questions.
- Return as a numbered list, plain text (no explanations).
`, count, techStack, keywords, yoe)
}
