package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourorg/amm-envconfig/internal/model"
	"github.com/yourorg/amm-envconfig/internal/resolver"
	"github.com/yourorg/amm-envconfig/internal/walletkit"
)

type contractView struct {
	Address     string                    `json:"address"`
	Interface   model.InterfaceDefinition `json:"abi"`
	Name        string                    `json:"name"`
	Version     string                    `json:"version"`
	Description string                    `json:"description"`
}

type statusView struct {
	Key           string             `json:"key"`
	ChainID       uint64             `json:"chainId"`
	CAIPNetworkID string             `json:"caipNetworkId"`
	Contract      string             `json:"contract"`
	Provisioned   bool               `json:"provisioned"`
	Warnings      []resolver.Warning `json:"warnings"`
	Fingerprint   string             `json:"fingerprint"`
	Keccak256     string             `json:"keccak256"`
	ChainSelector *selectorView      `json:"chainSelector,omitempty"`
	StartedAt     time.Time          `json:"startedAt"`
	Uptime        string             `json:"uptime"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleNetwork(c *gin.Context) {
	c.JSON(http.StatusOK, walletkit.NetworkFromBundle(s.bundle))
}

func (s *Server) handleContract(c *gin.Context) {
	contract := s.bundle.Contract()
	c.JSON(http.StatusOK, contractView{
		Address:     contract.Address,
		Interface:   contract.Interface,
		Name:        contract.Name,
		Version:     contract.Version,
		Description: contract.Description,
	})
}

func (s *Server) handleTokens(c *gin.Context) {
	tokens := make(map[model.TokenName]model.TokenDescriptor, len(model.TokenNames()))
	for _, name := range model.TokenNames() {
		if t, ok := s.bundle.Token(name); ok {
			tokens[name] = t
		}
	}
	c.JSON(http.StatusOK, tokens)
}

func (s *Server) handleToken(c *gin.Context) {
	name := model.TokenName(c.Param("name"))
	t, ok := s.bundle.Token(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown token " + string(name),
			"known": model.TokenNames(),
		})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleAppKit(c *gin.Context) {
	c.JSON(http.StatusOK, s.appKit)
}

func (s *Server) handleStatus(c *gin.Context) {
	n := s.bundle.Network()
	warnings := s.warnings
	if warnings == nil {
		warnings = []resolver.Warning{}
	}
	c.JSON(http.StatusOK, statusView{
		Key:           s.bundle.Key().String(),
		ChainID:       n.ID,
		CAIPNetworkID: n.CAIPNetworkID,
		Contract:      s.bundle.ContractAddress(),
		Provisioned:   s.bundle.Contract().IsProvisioned(),
		Warnings:      warnings,
		Fingerprint:   s.fingerprint.SHA256,
		Keccak256:     s.fingerprint.Keccak256,
		ChainSelector: s.selector,
		StartedAt:     s.started.UTC(),
		Uptime:        time.Since(s.started).Round(time.Second).String(),
	})
}
