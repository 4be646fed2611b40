package sheet

// Column describes one entry of the fixed column schema.
type Column struct {
	Key   string
	Title string
	Icon  string
}

// Column indexes, aligned with Columns and DefaultWidths.
const (
	ColIndex = iota
	ColJobRequest
	ColSubmitted
	ColStatus
	ColSubmitter
	ColURL
	ColAssigned
	ColPriority
	ColDueDate
	ColEstValue
)

// FillerRows is the number of empty rows drawn after the records.
const FillerRows = 20

// Columns is the column schema. Order is significant: it drives header
// rendering and width indexing.
var Columns = []Column{
	{Key: "index", Title: "#"},
	{Key: "jobRequest", Title: "Job Request", Icon: "📋"},
	{Key: "submitted", Title: "Submitted", Icon: "📅"},
	{Key: "status", Title: "Status", Icon: "⚪"},
	{Key: "submitter", Title: "Submitter", Icon: "👤"},
	{Key: "url", Title: "URL", Icon: "🔗"},
	{Key: "assigned", Title: "Assigned", Icon: "👥"},
	{Key: "priority", Title: "Priority"},
	{Key: "dueDate", Title: "Due Date"},
	{Key: "estValue", Title: "Est. Value"},
}

// DefaultWidths returns the initial pixel width of every column.
func DefaultWidths() []int {
	return []int{48, 288, 128, 128, 144, 144, 144, 96, 128, 128}
}

// ColumnTitle returns the title of column col, or "" when out of range.
func ColumnTitle(col int) string {
	if col < 0 || col >= len(Columns) {
		return ""
	}
	return Columns[col].Title
}
