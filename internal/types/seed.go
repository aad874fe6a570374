package types

// DefaultResume returns the seed document used when no persisted blob exists
// or a stored blob fails validation on load.
func DefaultResume() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane.doe@example.com",
			Phone:    "123-456-7890",
			Address:  "123 Main St, Anytown, USA",
			LinkedIn: "linkedin.com/in/janedoe",
			GitHub:   "github.com/janedoe",
		},
		Sections: []Section{
			{
				ID:      "summary",
				Type:    SectionSummary,
				Title:   "Professional Summary",
				Visible: true,
				Content: TextContent("A highly motivated and detail-oriented professional with 5 years of experience in software development. Seeking to leverage my expertise in full-stack development to contribute to your company's success."),
			},
			{
				ID:      "experience",
				Type:    SectionExperience,
				Title:   "Work Experience",
				Visible: true,
				Content: ExperienceList{
					{
						ID:          "exp1",
						Title:       "Senior Software Engineer",
						Company:     "Tech Solutions Inc.",
						Location:    "San Francisco, CA",
						StartDate:   "Jan 2021",
						EndDate:     "Present",
						Description: "- Led a team of 5 engineers in developing and launching a new e-commerce platform.\n- Improved application performance by 30% through code optimization and database tuning.\n- Mentored junior developers and conducted code reviews.",
					},
					{
						ID:          "exp2",
						Title:       "Software Engineer",
						Company:     "Web Innovators",
						Location:    "Austin, TX",
						StartDate:   "Jun 2018",
						EndDate:     "Dec 2020",
						Description: "- Developed and maintained front-end features for a SaaS application using React and Redux.\n- Collaborated with UX/UI designers to create intuitive and user-friendly interfaces.\n- Wrote unit and integration tests to ensure code quality.",
					},
				},
			},
			{
				ID:      "education",
				Type:    SectionEducation,
				Title:   "Education",
				Visible: true,
				Content: EducationList{
					{
						ID:             "edu1",
						Institution:    "University of Technology",
						Degree:         "Bachelor of Science in Computer Science",
						GraduationDate: "May 2018",
						GPA:            "3.8",
					},
				},
			},
			{
				ID:      "skills",
				Type:    SectionSkills,
				Title:   "Skills",
				Visible: true,
				Content: TextContent("JavaScript, TypeScript, React, Node.js, Python, Django, PostgreSQL, Docker, AWS"),
			},
			{
				ID:      "projects",
				Type:    SectionProjects,
				Title:   "Projects",
				Visible: true,
				Content: ProjectList{
					{
						ID:           "proj1",
						Name:         "Personal Portfolio Website",
						Description:  "A responsive website to showcase my projects and skills.",
						Technologies: "Next.js, Tailwind CSS, Vercel",
						Link:         "github.com/janedoe/portfolio",
					},
				},
			},
		},
		Theme: Theme{
			Color: "blue",
			Font:  "inter",
		},
		Layout: LayoutModern,
	}
}
