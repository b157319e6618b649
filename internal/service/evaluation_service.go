package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sysdesign_backend/internal/model"
	"time"
)

const evaluationSystemPrompt = "You are an expert system design interviewer. Evaluate solutions fairly but thoroughly. Always respond with valid JSON only."

const (
	evaluationTemperature = 0.3
	evaluationMaxTokens   = 2000
)

// EvaluationService 将图形解答转成文本描述，交给外部模型按权重评分。
// 评分质量完全取决于外部模型；本服务只负责提示词构造与结果解析
type EvaluationService struct {
	AI *AIService
}

func NewEvaluationService(ai *AIService) *EvaluationService {
	return &EvaluationService{AI: ai}
}

// diagramElement Excalidraw元素中评测关心的字段
type diagramElement struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type diagramSummary struct {
	// counts 按元素类型的数量直方图
	counts map[string]int
	// labels 画布上全部文本标签，保持原有顺序
	labels []string
}

// summarizeDiagram 对图形做启发式归类：矩形视作服务/组件，
// 椭圆视作数据库/存储。这只是标签统计，不做真正的语义解析
func summarizeDiagram(data json.RawMessage) diagramSummary {
	summary := diagramSummary{counts: map[string]int{}}

	var parsed struct {
		Elements []diagramElement `json:"elements"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return summary
	}

	for _, el := range parsed.Elements {
		summary.counts[el.Type]++
		if el.Type == "text" && el.Text != "" {
			summary.labels = append(summary.labels, el.Text)
		}
	}
	return summary
}

func (s diagramSummary) describe() string {
	return fmt.Sprintf(`
The diagram contains:
- %d rectangles (likely representing services/components)
- %d ellipses (likely representing databases/storage)
- %d arrows (showing data flow/connections)
- %d lines
- %d text labels

Text content in the diagram:
%s
`,
		s.counts["rectangle"],
		s.counts["ellipse"],
		s.counts["arrow"],
		s.counts["line"],
		s.counts["text"],
		strings.Join(s.labels, "\n"),
	)
}

func buildEvaluationPrompt(question *model.Question, summary diagramSummary) string {
	var requirements string
	if len(question.Requirements) > 0 {
		var b strings.Builder
		for i, r := range question.Requirements {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("- " + r)
		}
		requirements = b.String()
	} else {
		requirements = "No specific requirements"
	}

	var criteria strings.Builder
	for i, c := range question.EvaluationCriteria {
		if i > 0 {
			criteria.WriteString("\n")
		}
		criteria.WriteString(fmt.Sprintf("- %s (%d%%): %s", c.Name, c.Weight, c.Description))
	}

	return fmt.Sprintf(`You are an expert system design interviewer evaluating a candidate's system design solution.

## Question
**Title:** %s
**Description:** %s
**Difficulty:** %s

**Requirements:**
%s

## Evaluation Criteria
%s

## Candidate's Solution (Excalidraw Diagram Analysis)
%s

## Your Task
Evaluate this system design solution and provide:

1. **Overall Score (0-100):** A numerical score based on the weighted evaluation criteria.

2. **Detailed Feedback:** A comprehensive paragraph explaining the overall quality of the solution.

3. **Strengths:** List 3-5 specific things the candidate did well.

4. **Areas for Improvement:** List 3-5 specific suggestions for improvement.

5. **Criteria Scores:** For each evaluation criterion, provide:
   - Score (0-100)
   - Brief feedback

Please respond in the following JSON format:
{
  "score": <number>,
  "feedback": "<string>",
  "strengths": ["<string>", ...],
  "improvements": ["<string>", ...],
  "criteriaScores": [
    {
      "name": "<criterion name>",
      "score": <number>,
      "feedback": "<string>"
    }
  ]
}

Provide only the JSON response, no additional text.`,
		question.Title,
		question.Description,
		question.Difficulty,
		requirements,
		criteria.String(),
		summary.describe(),
	)
}

// extractJSON 取出文本中第一个括号配平的 {...} 片段。
// 扫描时跳过字符串字面量内部的花括号与转义字符
func extractJSON(content string) (string, error) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return "", fmt.Errorf("could not parse AI response as JSON")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		ch := content[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return content[start : i+1], nil
				}
			}
		}
	}

	return "", fmt.Errorf("could not parse AI response as JSON")
}

// Evaluate 执行整条评测流水线。注意：即便保存了光栅化快照，
// 发给评分模型的也只有文本/结构摘要，不包含图片
func (s *EvaluationService) Evaluate(ctx context.Context, question *model.Question, data json.RawMessage) (*model.Evaluation, error) {
	summary := summarizeDiagram(data)
	prompt := buildEvaluationPrompt(question, summary)

	content, err := s.AI.Chat(ctx, evaluationSystemPrompt, prompt, evaluationTemperature, evaluationMaxTokens)
	if err != nil {
		return nil, err
	}

	verdictJSON, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	// 这里不校验schema：字段缺失或维度数量与题目不符时照原样入库
	var evaluation model.Evaluation
	if err := json.Unmarshal([]byte(verdictJSON), &evaluation); err != nil {
		return nil, fmt.Errorf("could not parse AI response as JSON: %w", err)
	}

	evaluation.EvaluatedAt = time.Now()
	return &evaluation, nil
}
