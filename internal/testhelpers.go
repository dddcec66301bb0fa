package internal

// CreateTestCase creates a test case with sample data
func CreateTestCase(id string) *Case {
	return &Case{
		ID: id,
		Meta: CaseMeta{
			RelationshipType: "Parent-Child",
			Name1:            "Amy",
			Name2:            "Ben",
			Role1:            "parent",
			Role2:            "child",
		},
		Raw: Conversation{Script: []Turn{
			{Speaker: "Amy", Text: "Clean your room."},
			{Speaker: "Ben", Text: "Later."},
		}},
	}
}

// CreateTestRecord creates a test annotation record with a fixed timestamp
func CreateTestRecord(caseID, annotator string) *AnnotationRecord {
	rel := "Parent-Child"
	role1 := "parent"
	role2 := "child"
	return &AnnotationRecord{
		CaseID:       caseID,
		Annotator:    annotator,
		Timestamp:    "2025-06-01T10:00:00Z",
		Winner:       "Amy",
		PowerSources: []string{"ROLE", "STATUS"},
		MetaSnapshot: MetaSnapshot{
			RelationshipType: &rel,
			Role1:            &role1,
			Role2:            &role2,
			Name1:            "Amy",
			Name2:            "Ben",
		},
	}
}
