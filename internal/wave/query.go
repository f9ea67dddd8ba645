package wave

import "github.com/runforua/donorboard/internal/domain/invoice"

// invoicesQuery fetches one page of invoices filtered by invoice number.
// The field selection mirrors what the projector consumes; widening it is
// safe, narrowing it will surface as null columns.
const invoicesQuery = `query($businessId: ID!, $page: Int!, $slug: String!) {
  business(id: $businessId) {
    id
    invoices(
      page: $page,
      invoiceNumber: $slug
    ) {
      edges {
        node {
          id
          title
          subhead
          invoiceNumber
          footer
          memo
          status
          lastSentAt
          lastSentVia
          createdAt
          amountDue {
            raw
            value
          }
          amountPaid {
            raw
            value
          }
          total {
            raw
            value
          }
          customer {
            id
            name
            email
            address {
              addressLine1
              addressLine2
              city
              province {
                code
                name
              }
              country {
                code
                name
              }
              postalCode
            }
            shippingDetails {
              name
              phone
              address {
                addressLine1
                addressLine2
                city
                province {
                  code
                  name
                }
                country {
                  code
                  name
                }
                postalCode
              }
            }
          }
          items {
            description
            quantity
            unitPrice
            product {
              id
              name
            }
          }
        }
      }
      pageInfo {
        totalPages
        currentPage
        totalCount
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type invoicesResponse struct {
	Data   *invoicesData  `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type invoicesData struct {
	Business *businessData `json:"business"`
}

type businessData struct {
	ID       string        `json:"id"`
	Invoices *invoicesPage `json:"invoices"`
}

type invoicesPage struct {
	Edges    []invoiceEdge `json:"edges"`
	PageInfo pageInfo      `json:"pageInfo"`
}

type invoiceEdge struct {
	Node invoice.Invoice `json:"node"`
}

type pageInfo struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	TotalCount  int `json:"totalCount"`
}
