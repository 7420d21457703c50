package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	config "github.com/eduai/eduai_backend/configs"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// Fixed preambles per study tool; the message itself is passed through
// untouched.
var aiPreambles = map[string]string{
	"chat":    "You are a patient tutor. Answer the student's homework question step by step.",
	"quiz":    "Generate a short practice quiz with answers for the topic the student describes.",
	"essay":   "Give constructive feedback on the student's essay: structure, clarity, grammar.",
	"planner": "Build a realistic weekly study plan for the goals the student describes.",
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateAIReply forwards a single prompt to the Gemini API and returns the
// generated text.
func GenerateAIReply(toolType, message string) (string, error) {
	apiKey := config.Config("GEMINI_API_KEY")
	if apiKey == "" {
		return "", errors.New("GEMINI_API_KEY is not set in .env")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: aiPreambles[toolType] + "\n\n" + message}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Gemini payload: %v", err)
	}

	req, err := http.NewRequest("POST", geminiBaseURL+"?key="+apiKey, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send Gemini request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Gemini response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Gemini API error: %s", string(respBody))
		return "", fmt.Errorf("Gemini API returned non-200 status: %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal Gemini response: %v", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("Gemini API returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
