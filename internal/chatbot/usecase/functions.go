package usecase

import (
	"context"
	"encoding/json"
	"slices"

	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/product"

	"golang.org/x/sync/errgroup"
)

const (
	fnSearchProducts      = "search_products"
	fnSearchProductDetail = "search_product_detail"
	fnGenerateQuotation   = "generate_quotation"
)

const (
	resultNoCriteria         = "No search criteria provided."
	resultNoProducts         = "No products found."
	resultNoProductName      = "No product name provided."
	resultNoDetail           = "Product details not found."
	resultNoQuotationItems   = "No products provided for quotation."
	resultQuotationFailed    = "Failed to generate quotation."
	resultProductUnavailable = "Product API service not available."
	resultUnknownFunction    = "Unknown function: "

	resultQuotationUnauthorized = "ไม่สามารถสร้างใบเสนอราคาได้ค่ะ คำสั่งนี้สำหรับผู้ใช้ที่ได้รับอนุญาตเท่านั้น"
	resultInvalidPriceType      = "ไม่สามารถสร้างใบเสนอราคาได้ คำสั่งนี้สำหรับผู้ใช้ที่ได้รับอนุญาตเท่านั้น"
)

var priceTypes = []string{"ss", "s", "a", "b", "c", "vb", "vc", "d", "e", "f"}

func functionTools() []gemini.Tool {
	return []gemini.Tool{{FunctionDeclarations: []gemini.FunctionDeclaration{
		{
			Name:        fnSearchProducts,
			Description: "Search for products by exact category names from the catalog file. Returns product name, price, and unit grouped by category. CRITICAL: Copy complete category names including all text inside {}, [], () - these contain brand/model codes. Never exceed 3 categories.",
			Parameters: &gemini.Schema{
				Type: "object",
				Properties: map[string]*gemini.Schema{
					"criterias": {
						Type:        "array",
						Items:       &gemini.Schema{Type: "string"},
						Description: `Array of EXACT category names from catalog (the part before " | "). Must include ALL special characters: {}, [], () and their contents. Maximum 3 categories.`,
					},
				},
				Required: []string{"criterias"},
			},
		},
		{
			Name:        fnSearchProductDetail,
			Description: `Get detailed product specifications (weight, size, thickness, quantity per pack). CRITICAL: (1) MUST use EXACT product name from search_products() results - NEVER use customer's informal name directly, (2) If you don't have exact product name from previous search_products(), call search_products() FIRST to get it, (3) ALWAYS call this function for spec questions - NEVER say "information not available" without trying. Trigger keywords: น้ำหนัก/weight, หนา/thickness, ขนาด/size/dimensions, กี่ชิ้นต่อแพ็ค/quantity per pack.`,
			Parameters: &gemini.Schema{
				Type: "object",
				Properties: map[string]*gemini.Schema{
					"productName": {
						Type:        "string",
						Description: `EXACT complete product name from search_products() results. Must include ALL characters: brackets [], braces {}, parentheses (), numbers, Thai/English text. NEVER use customer's informal product name. Example correct: "รางวายเวย์ 2\"x3\" (50x75) ยาว 2.4เมตร สีขาว KWSS2038-10 KJL". Example WRONG: "KWSS2038-10" or "LC1D12M7".`,
					},
				},
				Required: []string{"productName"},
			},
		},
		{
			Name:        fnGenerateQuotation,
			Description: `Generate a fast quotation PDF from products discussed in the conversation. CRITICAL: ONLY call this function when the user message contains "ออกใบเสนอราคา" or "สร้างใบเสนอราคา" AND includes a valid price type (ss|s|a|b|c|vb|vc|d|e|f). NEVER call this function for product selection messages like "เอา [product]" or any other messages that do not explicitly request a quotation.`,
			Parameters: &gemini.Schema{
				Type: "object",
				Properties: map[string]*gemini.Schema{
					"quotaDetail": {
						Type: "array",
						Items: &gemini.Schema{
							Type: "object",
							Properties: map[string]*gemini.Schema{
								"productName": {
									Type:        "string",
									Description: "EXACT product name from search_products() results discussed in the conversation",
								},
								"amount": {
									Type:        "number",
									Description: "Quantity of the product. Use the amount discussed in conversation, or ask the user if not specified.",
								},
							},
							Required: []string{"productName", "amount"},
						},
						Description: "Array of products with their names and quantities from the conversation history",
					},
					"priceType": {
						Type:        "string",
						Enum:        priceTypes,
						Description: "Price type extracted from user message",
					},
				},
				Required: []string{"quotaDetail", "priceType"},
			},
		},
	}}}
}

// executeCalls runs every call of one round concurrently. Results keep call order.
// criteria collects the analytics entries of the round.
func (uc *implUseCase) executeCalls(ctx context.Context, calls []gemini.FunctionCall, authorized bool) (names []string, results []string, criteria []any) {
	names = make([]string, len(calls))
	results = make([]string, len(calls))

	var g errgroup.Group
	for i, call := range calls {
		names[i] = call.Name
		g.Go(func() error {
			results[i] = uc.executeFunction(ctx, call, authorized)
			return nil
		})
	}
	_ = g.Wait()

	for _, call := range calls {
		criteria = append(criteria, criteriaOf(call)...)
	}
	return names, results, criteria
}

func (uc *implUseCase) executeFunction(ctx context.Context, call gemini.FunctionCall, authorized bool) string {
	if uc.product == nil {
		return resultProductUnavailable
	}

	switch call.Name {
	case fnSearchProducts:
		var args struct {
			Criterias []string `json:"criterias"`
		}
		_ = decodeArgs(call.Args, &args)
		if len(args.Criterias) == 0 {
			return resultNoCriteria
		}
		res, err := uc.product.Search(ctx, args.Criterias)
		if err != nil || res == "" {
			if err != nil {
				uc.l.Warnf(ctx, "chatbot.usecase.executeFunction: Search failed: %v", err)
			}
			return resultNoProducts
		}
		return res

	case fnSearchProductDetail:
		var args struct {
			ProductName string `json:"productName"`
		}
		_ = decodeArgs(call.Args, &args)
		if args.ProductName == "" {
			return resultNoProductName
		}
		res, err := uc.product.Detail(ctx, args.ProductName)
		if err != nil || res == "" {
			if err != nil {
				uc.l.Warnf(ctx, "chatbot.usecase.executeFunction: Detail failed: %v", err)
			}
			return resultNoDetail
		}
		return res

	case fnGenerateQuotation:
		if !authorized {
			uc.l.Infof(ctx, "chatbot.usecase.executeFunction: quotation rejected for unauthorized caller")
			return resultQuotationUnauthorized
		}
		var args struct {
			QuotaDetail []product.QuotationItem `json:"quotaDetail"`
			PriceType   string                  `json:"priceType"`
		}
		_ = decodeArgs(call.Args, &args)
		if len(args.QuotaDetail) == 0 {
			return resultNoQuotationItems
		}
		if !slices.Contains(priceTypes, args.PriceType) {
			return resultInvalidPriceType
		}
		res, err := uc.product.Quotation(ctx, args.QuotaDetail, args.PriceType)
		if err != nil || res == "" {
			if err != nil {
				uc.l.Warnf(ctx, "chatbot.usecase.executeFunction: Quotation failed: %v", err)
			}
			return resultQuotationFailed
		}
		return res

	default:
		return resultUnknownFunction + call.Name
	}
}

// criteriaOf returns the analytics entries of one call.
func criteriaOf(call gemini.FunctionCall) []any {
	switch call.Name {
	case fnSearchProducts:
		switch v := call.Args["criterias"].(type) {
		case nil:
			return nil
		case []any:
			return v
		default:
			return []any{v}
		}
	case fnSearchProductDetail:
		if name, ok := call.Args["productName"]; ok {
			return []any{map[string]any{"productName": name}}
		}
	case fnGenerateQuotation:
		detail, ok := call.Args["quotaDetail"]
		if !ok {
			detail = []any{}
		}
		return []any{map[string]any{"quotaDetail": detail, "priceType": call.Args["priceType"]}}
	}
	return nil
}

func decodeArgs(args map[string]any, v any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

