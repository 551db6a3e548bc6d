package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/internal/domain/enum"
	"github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
	"github.com/sridharvel/annapoorna-pos/pkg/printer"
)

// PrinterService formats bills as thermal receipts and sends them to the
// configured printer.
type PrinterService struct {
	printer     printer.Printer
	billRepo    repository.BillRepository
	storeName   string
	printerType string
	width       int
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, billRepo repository.BillRepository, storeName, printerType string, width int) *PrinterService {
	if width <= 0 {
		width = 32
	}
	return &PrinterService{
		printer:     p,
		billRepo:    billRepo,
		storeName:   storeName,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a sample receipt to the printer. The receipt is returned
// either way so the handler can show it when no printer is attached.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		StoreName: s.storeName,
		BillNo:    0,
		Date:      "0000-00-00",
		Time:      "00:00:00",
		BillType:  enum.BillTypeCash.String(),
		Lines: []entity.ReceiptLine{
			{Name: "Test Item", Quantity: 2, Rate: decimal.NewFromInt(10), Amount: decimal.NewFromInt(20)},
		},
		Total: decimal.NewFromInt(20),
	}

	if err := s.printer.Print(s.formatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// PrintBillReceipt loads a bill with its lines and prints it. Used both for
// the original sale and for reprints after an edit.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, billID uint) (*entity.Receipt, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if bill == nil {
		return nil, apperror.NewReferenceError("Bill")
	}

	receipt := &entity.Receipt{
		StoreName: s.storeName,
		BillNo:    bill.ID,
		Date:      bill.Date(),
		Time:      bill.Time(),
		BillType:  enum.BillTypeCash.String(),
		Total:     bill.TotalAmount,
	}
	if bill.CreditBill != nil {
		receipt.BillType = enum.BillTypeCredit.String()
		receipt.Customer = bill.CreditBill.Customer.Name
	}

	for _, line := range bill.Lines {
		name := line.Item.NameLocal
		if name == "" {
			name = line.Item.NameCommon
		}
		receipt.Lines = append(receipt.Lines, entity.ReceiptLine{
			Name:     name,
			Quantity: line.Quantity,
			Rate:     line.Rate,
			Amount:   line.Amount(),
		})
	}

	if err := s.printer.Print(s.formatReceipt(receipt)); err != nil {
		log.WithError(err).WithField("bill_id", billID).Error("Receipt print failed")
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// formatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) formatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	doc.SetAlign(printer.AlignLeft).
		Rule('-')

	doc.KeyValue("Bill No:", fmt.Sprintf("%d", r.BillNo)).
		KeyValue("Date:", r.Date).
		KeyValue("Time:", r.Time)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}

	doc.Rule('-')

	for _, line := range r.Lines {
		doc.ItemLine(line.Name, line.Quantity, line.Rate.StringFixed(2), line.Amount.StringFixed(2))
	}

	doc.Rule('-')

	doc.SetBold(true).
		KeyValue("TOTAL:", r.Total.StringFixed(2)).
		SetBold(false)

	if r.BillType == enum.BillTypeCredit.String() {
		doc.SetAlign(printer.AlignCenter).
			SetBold(true).
			Text("** CREDIT **").
			SetBold(false).
			SetAlign(printer.AlignLeft)
	}

	doc.Rule('-')

	doc.SetAlign(printer.AlignCenter).
		Text("Nandri! Thank you!").
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
