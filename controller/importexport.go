package controller

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/umar710/Inventory-Management-Backend/inventory"
)

const maxImportSize = 10 << 20 // 10 MiB upload cap

// ImportProducts godoc
// @Summary Import products from a CSV upload (multipart field "csvFile")
// @Tags products
// @Accept mpfd
// @Produce json
// @Router /api/products/import [post]
func (pc *ProductController) ImportProducts(c *gin.Context) {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only CSV files are allowed"})
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	defer file.Close()

	// Imports run as "System" regardless of the caller, as the original
	// importer did.
	summary, err := pc.service.ImportCSV(c.Request.Context(), file, inventory.DefaultCreateActor)
	if err != nil {
		if errors.Is(err, inventory.ErrEmptyCSV) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pc.invalidate("")
	c.JSON(http.StatusOK, gin.H{
		"message": "Import completed",
		"summary": summary,
	})
}

// ExportProducts godoc
// @Summary Export the full catalog as CSV
// @Tags products
// @Produce text/csv
// @Router /api/products/export [get]
func (pc *ProductController) ExportProducts(c *gin.Context) {
	var buf bytes.Buffer
	if err := pc.service.ExportCSV(c.Request.Context(), &buf); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="products_export.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
