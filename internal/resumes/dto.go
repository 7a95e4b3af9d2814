package resumes

type parsedResumeResponse struct {
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Skills    []string `json:"skills"`
	Education []string `json:"education,omitempty"`
	RawText   string   `json:"rawText"`
}

func toResponse(res ParsedResume) parsedResumeResponse {
	skills := res.Skills
	if skills == nil {
		skills = []string{}
	}
	return parsedResumeResponse{
		Email:     res.Email,
		Phone:     res.Phone,
		Skills:    skills,
		Education: res.Education,
		RawText:   res.RawText,
	}
}
