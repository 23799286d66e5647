package dataimport

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nfeSample = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe35240112345678000190550010000012341000012345">
      <det nItem="1">
        <prod>
          <cProd>001</cProd>
          <xProd>ARROZ PARBOILIZADO 5KG</xProd>
          <uCom>PCT</uCom>
          <qCom>10.0000</qCom>
          <vUnCom>25.9000</vUnCom>
        </prod>
      </det>
      <det nItem="2">
        <prod>
          <cProd>002</cProd>
          <xProd>FEIJAO CARIOCA 1KG</xProd>
          <uCom>PCT</uCom>
          <qCom>20.0000</qCom>
          <vUnCom>8.5000</vUnCom>
        </prod>
      </det>
    </infNFe>
  </NFe>
</nfeProc>`

const nfseSample = `<?xml version="1.0" encoding="UTF-8"?>
<CompNfse>
  <Nfse>
    <InfNfse>
      <Servico>
        <Valores>
          <vServ>1500.00</vServ>
        </Valores>
        <xDescServ>R$ 500,00: Manutenção predial *** R$ 600,00: Pintura de salas *** R$ 400,00: Reparo hidráulico</xDescServ>
      </Servico>
    </InfNfse>
  </Nfse>
</CompNfse>`

func TestParseInvoiceXML_ProductInvoice(t *testing.T) {
	result, err := ParseInvoiceXML([]byte(nfeSample))
	require.NoError(t, err)

	assert.Equal(t, InvoiceKindProduct, result.Kind)
	require.Len(t, result.Items, 2)

	first := result.Items[0]
	assert.Equal(t, "ARROZ PARBOILIZADO 5KG", first.Description)
	assert.Equal(t, "10.00", first.Quantity.StringFixed(2))
	assert.Equal(t, "PCT", first.Unit)
	assert.Equal(t, "25.90", first.WinningUnitPrice.StringFixed(2))
	assert.True(t, first.Synthetic)
	require.Len(t, first.CompetitorPrices, 2)
}

func TestParseInvoiceXML_ServiceInvoiceSegments(t *testing.T) {
	result, err := ParseInvoiceXML([]byte(nfseSample))
	require.NoError(t, err)

	assert.Equal(t, InvoiceKindService, result.Kind)
	require.Len(t, result.Items, 3)

	assert.Equal(t, "Manutenção predial", result.Items[0].Description)
	assert.Equal(t, "500.00", result.Items[0].WinningUnitPrice.StringFixed(2))
	assert.Equal(t, "Pintura de salas", result.Items[1].Description)
	assert.Equal(t, "600.00", result.Items[1].WinningUnitPrice.StringFixed(2))
	assert.Equal(t, "Reparo hidráulico", result.Items[2].Description)
	assert.Equal(t, "400.00", result.Items[2].WinningUnitPrice.StringFixed(2))

	for _, item := range result.Items {
		assert.Equal(t, "1.00", item.Quantity.StringFixed(2))
		assert.True(t, item.Synthetic)
		assert.Len(t, item.CompetitorPrices, 2)
	}
}

func TestParseInvoiceXML_ServiceInvoiceFallsBackToTotal(t *testing.T) {
	xml := `<Nfse><Servico><Valores><vServ>350.00</vServ></Valores>
		<xDescServ>Serviço de dedetização completa</xDescServ></Servico></Nfse>`

	result, err := ParseInvoiceXML([]byte(xml))
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Serviço de dedetização completa", result.Items[0].Description)
	assert.Equal(t, "350.00", result.Items[0].WinningUnitPrice.StringFixed(2))
}

func TestParseInvoiceXML_SegmentedWithoutPriceStaysZero(t *testing.T) {
	xml := `<Nfse><Servico><Valores><vServ>500.00</vServ></Valores>
		<xDescServ>*** Serviço de manutenção geral</xDescServ></Servico></Nfse>`

	result, err := ParseInvoiceXML([]byte(xml))
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Serviço de manutenção geral", result.Items[0].Description)
	assert.True(t, result.Items[0].WinningUnitPrice.IsZero())
	assert.Empty(t, result.Items[0].CompetitorPrices)
}

func TestParseInvoiceXML_Unrecognized(t *testing.T) {
	_, err := ParseInvoiceXML([]byte("<root><foo>bar</foo></root>"))
	assert.ErrorIs(t, err, ErrUnrecognizedDocument)

	_, err = ParseInvoiceXML([]byte("   "))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ParseInvoiceXML([]byte("not xml at all <<<"))
	assert.Error(t, err)
}

func TestSynthesizeCompetitorPrices(t *testing.T) {
	prices := SynthesizeCompetitorPrices(decimal.NewFromFloat(100.00))

	require.Len(t, prices, 2)
	assert.Equal(t, "101.60", prices[0].StringFixed(2))
	assert.Equal(t, "101.85", prices[1].StringFixed(2))
}
