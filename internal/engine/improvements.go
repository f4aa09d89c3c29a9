package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"reelskills-backend/internal/domain"
)

// MinDescriptionLength is the rune count below which a description is considered thin.
const MinDescriptionLength = 50

var foundationalResources = []string{
	"Official documentation and getting-started guides",
	"Guided hands-on exercises with instant feedback",
	"Small practice projects reviewed by the community",
}

// certificationsBySkill is keyed by normalizeSkillName.
var certificationsBySkill = map[string][]string{
	"python": {
		"PCEP - Certified Entry-Level Python Programmer",
		"PCAP - Certified Associate in Python Programming",
		"PCPP - Certified Professional in Python Programming",
	},
	"javascript": {
		"JSE - Certified Entry-Level JavaScript Programmer",
		"JSA - Certified Associate JavaScript Programmer",
	},
	"java": {
		"Oracle Certified Professional: Java SE Developer",
		"Oracle Certified Associate: Java SE Programmer",
	},
	"aws": {
		"AWS Certified Solutions Architect - Associate",
		"AWS Certified Developer - Associate",
		"AWS Certified DevOps Engineer - Professional",
	},
	"azure": {
		"Microsoft Certified: Azure Fundamentals",
		"Microsoft Certified: Azure Developer Associate",
		"Microsoft Certified: Azure Solutions Architect Expert",
	},
	"google cloud": {
		"Google Cloud Associate Cloud Engineer",
		"Google Cloud Professional Cloud Architect",
	},
	"kubernetes": {
		"Certified Kubernetes Administrator (CKA)",
		"Certified Kubernetes Application Developer (CKAD)",
		"Certified Kubernetes Security Specialist (CKS)",
	},
	"docker": {
		"Docker Certified Associate (DCA)",
	},
	"react": {
		"Meta Front-End Developer Professional Certificate",
	},
	"machine learning": {
		"Google Professional Machine Learning Engineer",
		"AWS Certified Machine Learning - Specialty",
	},
	"sql": {
		"Oracle Database SQL Certified Associate",
		"Microsoft Certified: Azure Data Fundamentals",
	},
}

// CertificationSuggestions returns at most three certifications for a skill name.
func CertificationSuggestions(skillName string) []string {
	if certs, ok := certificationsBySkill[normalizeSkillName(skillName)]; ok {
		out := make([]string, 0, 3)
		for i := 0; i < len(certs) && i < 3; i++ {
			out = append(out, certs[i])
		}
		return out
	}
	return []string{
		fmt.Sprintf("%s Professional Certification", skillName),
		fmt.Sprintf("Industry-recognized %s credential", skillName),
	}
}

// EvaluateImprovements runs every rule against one skill. The output order is
// the rule order; use RankImprovements to prioritise it.
func EvaluateImprovements(skill domain.Skill) []domain.Improvement {
	out := make([]domain.Improvement, 0, 6)

	if !skill.HasVideo() {
		out = append(out, domain.Improvement{
			Type:          domain.ImprovementVideo,
			Title:         "Add Video Demonstration",
			Description:   fmt.Sprintf("Record a short video showing your %s skills in action. Profiles with video demos get noticeably more recruiter views.", skill.Name),
			Priority:      domain.PriorityCritical,
			Actionable:    true,
			EstimatedTime: "15-30 minutes",
			Action:        &domain.ImprovementAction{Kind: domain.ActionUploadVideo},
		})
	} else if !skill.VideoVerified {
		out = append(out, domain.Improvement{
			Type:          domain.ImprovementVideo,
			Title:         "Get AI Verification",
			Description:   fmt.Sprintf("Your %s video has not been verified yet. Run the AI analysis to earn a verified badge.", skill.Name),
			Priority:      domain.PriorityHigh,
			Actionable:    true,
			EstimatedTime: "2-5 minutes",
			Action:        &domain.ImprovementAction{Kind: domain.ActionRequestAnalysis},
		})
	}

	if skill.YearsExperience == 0 {
		out = append(out, domain.Improvement{
			Type:          domain.ImprovementExperience,
			Title:         "Add Experience Details",
			Description:   fmt.Sprintf("Tell recruiters how long you have been working with %s.", skill.Name),
			Priority:      domain.PriorityMedium,
			Actionable:    true,
			EstimatedTime: "2 minutes",
			Action:        &domain.ImprovementAction{Kind: domain.ActionEditSkill},
		})
	}

	if descriptionTooShort(skill.Description) {
		out = append(out, domain.Improvement{
			Type:          domain.ImprovementExperience,
			Title:         "Enhance Skill Description",
			Description:   fmt.Sprintf("Describe concrete projects and results where you used %s (at least %d characters).", skill.Name, MinDescriptionLength),
			Priority:      domain.PriorityMedium,
			Actionable:    true,
			EstimatedTime: "5-10 minutes",
			Action:        &domain.ImprovementAction{Kind: domain.ActionEditSkill},
		})
	}

	if skill.Proficiency != domain.ProficiencyMaster && skill.YearsExperience > 0 {
		next := NextTier(skill.Proficiency)
		out = append(out, domain.Improvement{
			Type:          domain.ImprovementProficiency,
			Title:         fmt.Sprintf("Advance to %s", tierLabel(next)),
			Description:   fmt.Sprintf("With %d years of %s experience you are ready to work towards the %s level.", skill.YearsExperience, skill.Name, next),
			Priority:      domain.PriorityMedium,
			Actionable:    true,
			EstimatedTime: "2-3 months",
			Action: &domain.ImprovementAction{
				Kind:        domain.ActionAdvanceProficiency,
				CurrentTier: skill.Proficiency,
				NextTier:    next,
			},
		})
	}

	if skill.Proficiency == domain.ProficiencyBeginner {
		resources := make([]string, len(foundationalResources))
		copy(resources, foundationalResources)
		out = append(out, domain.Improvement{
			Type:          domain.ImprovementPractice,
			Title:         "Build Your Foundation",
			Description:   fmt.Sprintf("Regular practice is the fastest way past the beginner stage in %s.", skill.Name),
			Priority:      domain.PriorityHigh,
			Actionable:    true,
			EstimatedTime: "1-2 hours per week",
			Action: &domain.ImprovementAction{
				Kind:      domain.ActionOpenResources,
				Resources: resources,
			},
		})
	}

	if (skill.Proficiency == domain.ProficiencyAdvanced || skill.Proficiency == domain.ProficiencyExpert) &&
		skill.Category == domain.CategoryTechnical {
		out = append(out, domain.Improvement{
			Type:          domain.ImprovementCertification,
			Title:         "Earn a Certification",
			Description:   fmt.Sprintf("A recognised certification validates your %s expertise for employers.", skill.Name),
			Priority:      domain.PriorityMedium,
			Actionable:    true,
			EstimatedTime: "4-8 weeks",
			Action: &domain.ImprovementAction{
				Kind:           domain.ActionViewCertifications,
				Certifications: CertificationSuggestions(skill.Name),
			},
		})
	}

	return out
}

func descriptionTooShort(desc *string) bool {
	if desc == nil {
		return true
	}
	return utf8.RuneCountInString(strings.TrimSpace(*desc)) < MinDescriptionLength
}
