package dto

type VoiceDetectInput struct {
	AudioBase64 string `json:"audio_base64"`
	Language    string `json:"language"`
}
