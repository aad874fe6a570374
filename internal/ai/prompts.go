package ai

import "fmt"

// improvePrompt asks for a rewrite of one block of resume text.
func improvePrompt(text string) string {
	return fmt.Sprintf(`You are a professional resume writer. You will be given the content of a resume, and you will improve it to enhance readability, clarity, and impact. Return only the improved text, with no commentary.

Resume Content:
%s`, text)
}

// parsePrompt asks for raw resume text structured into the document format.
func parsePrompt(text string) string {
	return fmt.Sprintf(`You are an expert resume parser. Identify the distinct sections of the resume below (personal info, professional summary, work experience, education, skills, projects, certifications, languages) and structure them as a single JSON object with this shape:

{
  "personalInfo": {"name": "", "email": "", "phone": "", "address": "", "linkedin": "", "github": ""},
  "sections": [
    {"id": "", "type": "summary|experience|education|skills|projects|certifications|languages", "title": "", "visible": true, "content": ...}
  ]
}

Content rules: summary, skills, and languages sections carry a plain string; experience sections carry a list of {"id","title","company","location","startDate","endDate","description"}; education sections carry a list of {"id","institution","degree","graduationDate","gpa"}; projects carry a list of {"id","name","description","technologies","link"}; certifications carry a list of {"id","name","issuer","date"}. Generate a unique id for every section and every list item (for example "exp1", "edu1"). Set every section to "visible": true. Only include sections actually present in the text.

Resume Text:
%s`, text)
}

// enhancePrompt asks for a full-document rewrite that preserves structure.
func enhancePrompt(documentJSON string) string {
	return fmt.Sprintf(`You are a professional resume writer. Review every section of this resume (summary, experience descriptions) and make it more impactful, clear, and professional. Use action verbs and quantify achievements wherever possible. Keep the given JSON structure exactly: same fields, same ids, same section order, same theme and layout. Return only the JSON object.

Resume Data:
%s`, documentJSON)
}
