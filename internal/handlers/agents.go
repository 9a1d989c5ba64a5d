package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// AgentsStatus reports the static agent roster. The agent definitions are
// configuration for an external runtime; the backend only surfaces them.
func AgentsStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"coordinator": fiber.Map{
			"name":   "financial_crime_coordinator",
			"status": "active",
			"model":  "gemini-2.0-flash",
		},
		"sub_agents": []fiber.Map{
			{
				"name":           "transaction_analyzer",
				"status":         "active",
				"specialization": "Transaction pattern analysis",
			},
			{
				"name":           "risk_assessor",
				"status":         "active",
				"specialization": "Risk factor evaluation",
			},
			{
				"name":           "compliance_checker",
				"status":         "active",
				"specialization": "Regulatory compliance verification",
			},
			{
				"name":           "pattern_detector",
				"status":         "active",
				"specialization": "Suspicious pattern detection",
			},
		},
	})
}
