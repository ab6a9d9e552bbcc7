package dto

import "time"

type SimulateCallRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	CallerName  string `json:"callerName"`
	Message     string `json:"message"`
}

type SimulateCallResponse struct {
	Success    bool   `json:"success"`
	CallID     uint   `json:"callId"`
	RiskScore  int    `json:"riskScore"`
	Category   string `json:"category"`
	AIResponse string `json:"aiResponse"`
	Blocked    bool   `json:"blocked"`
}

// CallSummary is the list representation: transcription and assistant
// reply are only returned on the detail endpoint.
type CallSummary struct {
	ID          uint      `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	CallerName  *string   `json:"callerName"`
	Timestamp   time.Time `json:"timestamp"`
	RiskScore   int       `json:"riskScore"`
	Category    string    `json:"category"`
	Blocked     bool      `json:"blocked"`
	Duration    *int      `json:"duration"`
}
