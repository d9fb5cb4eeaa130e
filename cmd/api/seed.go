package main

import (
	"context"
	"fmt"

	"jobhub/internal/database"
	"jobhub/internal/store"
)

// seedCvTemplates fills the template catalog on first boot. Templates are
// administered data; ordinary users only read them.
func seedCvTemplates(ctx context.Context, st *store.Store) error {
	count, err := st.CountCvTemplates(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	templates := []database.CvTemplate{
		{Name: "Professional Modern", Description: "Clean and modern design perfect for corporate environments and professional roles.", Category: database.CategoryProfessional, IsActive: true},
		{Name: "Creative Designer", Description: "Bold and colorful design ideal for creative professionals and design roles.", Category: database.CategoryCreative, IsActive: true},
		{Name: "Simple Classic", Description: "Minimalist design that focuses on content and readability.", Category: database.CategorySimple, IsActive: true},
		{Name: "Technical Engineer", Description: "Structured layout perfect for technical and engineering positions.", Category: database.CategoryTechnical, IsActive: true},
		{Name: "Executive Leader", Description: "Sophisticated design for senior management and executive roles.", Category: database.CategoryExecutive, IsActive: true},
		{Name: "Fresh Graduate", Description: "Youth-friendly design perfect for students and recent graduates.", Category: database.CategoryStudent, IsActive: true},
		{Name: "Modern Minimalist", Description: "Ultra-clean design with plenty of white space for a professional look.", Category: database.CategoryProfessional, IsActive: true},
		{Name: "Creative Portfolio", Description: "Showcase your creative work with this portfolio-style CV template.", Category: database.CategoryCreative, IsActive: true},
		{Name: "Tech Specialist", Description: "Perfect for software developers and IT professionals.", Category: database.CategoryTechnical, IsActive: true},
		{Name: "Business Professional", Description: "Traditional business format suitable for all corporate roles.", Category: database.CategoryProfessional, IsActive: true},
		{Name: "Startup Enthusiast", Description: "Dynamic design for startup environments and entrepreneurial roles.", Category: database.CategoryCreative, IsActive: true},
		{Name: "Academic Scholar", Description: "Formal academic layout perfect for research and educational positions.", Category: database.CategorySimple, IsActive: true},
	}

	for i := range templates {
		if err := st.CreateCvTemplate(ctx, &templates[i]); err != nil {
			return fmt.Errorf("seed template %q: %w", templates[i].Name, err)
		}
	}
	return nil
}
