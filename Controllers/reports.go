package Controllers

import (
	"bytes"
	"fmt"

	"Eventy/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportController exports management reports
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportRequests writes all client requests into an Excel workbook and sends
// it as a download.
func (rc *ReportController) ExportRequests(ctx *fiber.Ctx) error {
	var reqs []Models.Request
	if result := rc.DB.Order("id desc").Find(&reqs); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve requests"})
	}

	buf, err := requestsToExcel(reqs)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="requests.xlsx"`)
	return ctx.Send(buf.Bytes())
}

func requestsToExcel(reqs []Models.Request) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Requests"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"ID", "Client Name", "Event Type", "Event Details", "Client Budget",
		"Status", "Assigned To", "Created By", "Ready For Planning",
		"Tasks For", "Created At",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, req := range reqs {
		row := rowIndex + 2

		values := []interface{}{
			req.ID,
			req.ClientName,
			req.EventType,
			req.EventDetails,
			req.ClientBudget,
			req.Status,
			req.AssignedTo,
			req.CreatedBy,
			req.ReadyForPlanning,
			req.TasksFor,
			req.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 18)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}
