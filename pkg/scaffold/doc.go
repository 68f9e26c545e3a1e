// Package scaffold turns the answers collected for a new project into the
// configuration documents written on top of the project template.
//
// Planning is pure: Plan performs no I/O and always produces the same three
// documents for the same answers. Writing them to disk is the job of
// pkg/project.
//
// # Usage Example
//
//	answers, err := scaffold.NewAnswers(scaffold.ProjectAnswers{
//		ProjectName: "my-shop",
//		DBUser:      "root",
//		DBHost:      "localhost",
//		DBPort:      3306,
//	})
//	if err != nil {
//		var ve *scaffold.ValidationError
//		if errors.As(err, &ve) {
//			// re-prompt for ve.Field
//		}
//		return err
//	}
//
//	for _, doc := range scaffold.Plan(answers) {
//		fmt.Println(doc.Path)
//	}
package scaffold
