package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func seededDoc(t *testing.T) model.Document {
	t.Helper()
	doc := model.New()
	var err error
	doc, _, err = Append(doc, WorkExperience, map[string]any{"company": "Acme", "position": "Engineer"})
	require.NoError(t, err)
	doc, _, err = Append(doc, WorkExperience, map[string]any{"company": "Globex", "position": "SRE"})
	require.NoError(t, err)
	doc, _, err = Append(doc, WorkExperience, map[string]any{"company": "Initech", "position": "Manager"})
	require.NoError(t, err)
	return doc
}

func experienceIDs(doc model.Document) []string {
	ids := make([]string, 0, len(doc.WorkExperience))
	for _, exp := range doc.WorkExperience {
		ids = append(ids, exp.ID)
	}
	return ids
}

func TestAppendMintsUniqueIDs(t *testing.T) {
	doc := seededDoc(t)

	ids := experienceIDs(doc)
	seen := map[string]bool{}
	for _, id := range ids {
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestAppendDoesNotMutateOriginal(t *testing.T) {
	doc := model.New()
	out, _, err := Append(doc, Projects, map[string]any{"name": "CLI"})
	require.NoError(t, err)

	assert.Len(t, doc.Projects, 0)
	assert.Len(t, out.Projects, 1)
	assert.Equal(t, "CLI", out.Projects[0].Name)
}

func TestAppendUnknownCollection(t *testing.T) {
	_, _, err := Append(model.New(), Collection("hobbies"), nil)
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestRemoveAtPreservesSurvivorIdentityAndOrder(t *testing.T) {
	doc := seededDoc(t)
	before := experienceIDs(doc)

	out, err := RemoveAt(doc, WorkExperience, 1)
	require.NoError(t, err)

	require.Len(t, out.WorkExperience, 2)
	assert.Equal(t, []string{before[0], before[2]}, experienceIDs(out))
	assert.Equal(t, "Acme", out.WorkExperience[0].Company)
	assert.Equal(t, "Initech", out.WorkExperience[1].Company)
}

func TestAppendThenRemoveAtRestoresCollection(t *testing.T) {
	doc := seededDoc(t)

	appended, _, err := Append(doc, WorkExperience, map[string]any{"company": "Hooli"})
	require.NoError(t, err)
	restored, err := RemoveAt(appended, WorkExperience, len(appended.WorkExperience)-1)
	require.NoError(t, err)

	assert.True(t, doc.Equal(restored))
}

func TestRemoveAtOutOfRange(t *testing.T) {
	doc := seededDoc(t)

	_, err := RemoveAt(doc, WorkExperience, len(doc.WorkExperience))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = RemoveAt(doc, WorkExperience, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// The failed operations must not have touched the collection.
	assert.Len(t, doc.WorkExperience, 3)
}

func TestUpdateFieldReplacesOneFieldOnly(t *testing.T) {
	doc := seededDoc(t)
	before := experienceIDs(doc)

	out, err := UpdateField(doc, WorkExperience, 1, "position", "Staff SRE")
	require.NoError(t, err)

	assert.Equal(t, "Staff SRE", out.WorkExperience[1].Position)
	assert.Equal(t, "Globex", out.WorkExperience[1].Company)
	assert.Equal(t, "Engineer", out.WorkExperience[0].Position)
	assert.Equal(t, before, experienceIDs(out), "ids must survive updates")

	// Original untouched.
	assert.Equal(t, "SRE", doc.WorkExperience[1].Position)
}

func TestUpdateFieldBoolAndList(t *testing.T) {
	doc := seededDoc(t)

	out, err := UpdateField(doc, WorkExperience, 0, "current", true)
	require.NoError(t, err)
	assert.True(t, out.WorkExperience[0].Current)

	out, err = UpdateField(out, WorkExperience, 0, "description", []string{"led migration", "cut latency 40%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"led migration", "cut latency 40%"}, out.WorkExperience[0].Description)

	// JSON-decoded bodies arrive as []any.
	out, err = UpdateField(out, WorkExperience, 0, "description", []any{"one", "two"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, out.WorkExperience[0].Description)
}

func TestUpdateFieldContractViolations(t *testing.T) {
	doc := seededDoc(t)

	_, err := UpdateField(doc, WorkExperience, 3, "company", "Hooli")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = UpdateField(doc, WorkExperience, 0, "salary", "1")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = UpdateField(doc, WorkExperience, 0, "current", "yes")
	assert.ErrorIs(t, err, ErrInvalidFieldValue)

	_, err = UpdateField(doc, Collection("hobbies"), 0, "name", "chess")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestEditorCoversAllFourCollections(t *testing.T) {
	doc := model.New()
	var err error

	doc, _, err = Append(doc, Education, map[string]any{"institution": "MIT", "degree": "BSc", "gpa": "3.9"})
	require.NoError(t, err)
	doc, _, err = Append(doc, Projects, map[string]any{"name": "tracer", "technologies": []string{"Go"}})
	require.NoError(t, err)
	doc, _, err = Append(doc, Certifications, map[string]any{"name": "CKA", "issuer": "CNCF"})
	require.NoError(t, err)

	doc, err = UpdateField(doc, Education, 0, "field", "CS")
	require.NoError(t, err)
	doc, err = UpdateField(doc, Projects, 0, "link", "https://example.com/tracer")
	require.NoError(t, err)
	doc, err = UpdateField(doc, Certifications, 0, "credential_id", "abc-123")
	require.NoError(t, err)

	assert.Equal(t, "CS", doc.Education[0].Field)
	assert.Equal(t, "https://example.com/tracer", doc.Projects[0].Link)
	assert.Equal(t, "abc-123", doc.Certifications[0].CredentialID)

	doc, err = RemoveAt(doc, Education, 0)
	require.NoError(t, err)
	assert.Empty(t, doc.Education)
}
