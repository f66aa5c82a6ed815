// services/contract_template.go
package services

import (
	"bytes"
	"encoding/json"
	"html/template"
	"time"

	"github.com/odairorso/Contratoloca-aocarro/models"
	"github.com/odairorso/Contratoloca-aocarro/utils"
)

// ClientSnapshot is the copy-by-value client block embedded in a contract.
// The JSON keys match the historical record shape (nome, cpf, ...) so
// documents saved by the legacy system keep loading.
type ClientSnapshot struct {
	Name         string `json:"nome"`
	CpfCnpj      string `json:"cpf"`
	RG           string `json:"rg"`
	Address      string `json:"endereco"`
	Neighborhood string `json:"bairro"`
	Phone        string `json:"telefone"`
	Email        string `json:"email"`
}

// ServiceSnapshot is the copy-by-value service/rental block embedded in a
// contract. Amount fields stay strings exactly as typed; parsing happens at
// computation time and bad input counts as zero.
type ServiceSnapshot struct {
	// garage/service-order fields
	Vehicle  string `json:"veiculo"`
	Services string `json:"servicos"`
	Value    string `json:"valor"`
	Deadline string `json:"prazo"`

	// rental fields
	Model       string `json:"modelo"`
	Year        string `json:"anoFabricacao"`
	Color       string `json:"cor"`
	Plate       string `json:"placa"`
	Renavam     string `json:"renavam"`
	StartDate   string `json:"dataInicio"` // yyyy-mm-dd
	EndDate     string `json:"dataFim"`    // yyyy-mm-dd
	DailyRate   string `json:"valorDiaria"`
	Deposit     string `json:"caucao"`
	InitialKm   string `json:"kmInicial"`
	MarketValue string `json:"valorMercado"`

	Notes string `json:"observacoes"`
}

// ToJSONB converts a snapshot into the jsonb map stored on the contract row.
func ToJSONB(v interface{}) models.JSONB {
	raw, err := json.Marshal(v)
	if err != nil {
		return models.JSONB{}
	}
	var m models.JSONB
	if err := json.Unmarshal(raw, &m); err != nil {
		return models.JSONB{}
	}
	return m
}

type rentalTemplateData struct {
	ClientName         string
	ClientDoc          string
	ClientAddress      string
	ClientNeighborhood string

	Model       string
	Year        string
	Plate       string
	MarketValue string

	DailyRate string
	Total     string
	Days      int
	StartDate string // dd/mm/yyyy
	EndDate   string // dd/mm/yyyy
	Deposit   string
	Notes     string

	IssueDate string // long form, "28 de AGOSTO de 2026"
}

type garageTemplateData struct {
	ClientName string
	ClientDoc  string
	Vehicle    string
	Plate      string
	Services   string
	Value      string
	Deadline   string
	Notes      string
	IssueDate  string // dd/mm/yyyy
}

// Fixed lessor identification printed on every rental contract.
const (
	lessorCompany   = "OR DOS SANTOS DE OLIVEIRA LTDA"
	lessorCnpj      = "17.909.442/0001-58"
	lessorAddress   = "Av campo grande 707, bairro centro"
	lessorOwner     = "João Roberto dos Santos de Oliveira"
	lessorOwnerCpf  = "008.714.291-01"
	lessorOwnerRg   = "1447272"
	lessorCity      = "Naviraí"
	lessorPixKey    = "17909442000158"
	insuranceCopay  = "R$ 3.520,00 (três mil e quinhentos e vinte reais)"
	borderCrossFine = "R$280,00 (Duzentos e oitenta reais)"
)

var rentalContractTmpl = template.Must(template.New("rental").Parse(`
<div style="font-family: 'Times New Roman', Times, serif; font-size: 12pt; line-height: 1.5;">
  <h2 style="text-align: center; font-weight: bold;">CONTRATO DE LOCAÇÃO DE VEÍCULO</h2>
  <br/>
  <p><strong>Entre:</strong></p>
  <p>a pessoa jurídica ` + lessorCompany + `, inscrita sob o CNPJ n.º ` + lessorCnpj + `, com sede em ` + lessorAddress + `, neste ato representada, conforme poderes especialmente conferidos, por: ` + lessorOwner + `, na qualidade de: Administrador, CPF n.º ` + lessorOwnerCpf + `, carteira de identidade n.º ` + lessorOwnerRg + `, doravante denominada <strong>LOCADORA</strong>,</p>
  <br/>
  <p><strong>e:</strong></p>
  <p>{{.ClientName}}, CNPJ n.º {{.ClientDoc}}, residente em: {{.ClientAddress}}, bairro {{.ClientNeighborhood}}, doravante denominado <strong>LOCATÁRIO</strong>.</p>
  <br/>
  <p>As partes acima identificadas têm entre si justo e acertado o presente contrato de locação de veículo, ficando desde já aceito nas cláusulas e condições abaixo descritas.</p>
  <br/>
  <p><strong>CLÁUSULA 1ª – DO OBJETO</strong></p>
  <p>Por meio deste contrato, que firmam entre si a LOCADORA e o LOCATÁRIO, regula-se a locação do veículo:<br/>
  {{.Model}} ano {{.Year}}<br/>
  Com placa {{.Plate}}, e com o valor de mercado aproximado em R$ {{.MarketValue}}</p>
  <p><strong>Parágrafo único.</strong> O presente contrato é acompanhado de um laudo de vistoria, que descreve o veículo e o seu estado de conservação no momento em que o mesmo foi entregue ao LOCATÁRIO.</p>
  <br/>
  <p><strong>CLÁUSULA 2ª – DO VALOR DO ALUGUEL</strong></p>
  <p>O valor da diária do aluguel, livremente ajustado pelas partes, é de R$ {{.DailyRate}}. O valor total da locação é de R$ {{.Total}} para o período de {{.Days}} dias.</p>
  <p><strong>§ 1º.</strong> O LOCATÁRIO deverá efetuar o pagamento do valor acordado, por meio de pix, utilizando a chave ` + lessorPixKey + `, ou em espécie, ou cartão.</p>
  <p><strong>§ 2º.</strong> Em caso de atraso no pagamento do aluguel, será aplicada multa de 5% (cinco por cento), sobre o valor devido, bem como juros de mora de 3% (um por cento) ao mês, mais correção monetária, apurada conforme variação do IGP-M no período.</p>
  <p><strong>§ 3º.</strong> O LOCATÁRIO, não vindo a efetuar o pagamento do aluguel por um período de atraso superior à 7 (sete) dias, fica sujeito a ter a posse do veículo configurada como Apropriação Indébita, implicando também a possibilidade de adoção de medidas judiciais, inclusive a Busca e Apreensão do veículo e/ou lavratura de Boletim de Ocorrência, cabendo ao LOCATÁRIO ressarcir a LOCADORA das despesas oriundas da retenção indevida do bem, arcando ainda com as despesas judiciais e/ou extrajudiciais que a LOCADORA venha a ter para efetuar a busca, apreensão e efetiva reintegração da posse do veículo.</p>
  <p><strong>§ 4º.</strong> Será de responsabilidade do LOCATÁRIO as despesas referentes à utilização do veículo.</p>
  <p><strong>§ 5º.</strong> O valor do aluguel firmado neste contrato será reajustado a cada 12 (doze) meses, tendo como base o índice IGP. Em caso de falta deste índice, o reajuste do valor da locação terá por base a média da variação dos índices inflacionários do ano corrente ao da execução da locação.</p>
  <br/>
  <p><strong>CLÁUSULA 3ª – DO PRAZO DO ALUGUEL</strong></p>
  <p>O prazo de locação do referido veículo é de {{.StartDate}} A {{.EndDate}} ENTREGAR ATE AS 8:00 DA MANHÃ.</p>
  <p><strong>§ 1º.</strong> Ao final do prazo estipulado, caso as partes permaneçam inertes, a locação prorrogar-se-á automaticamente por tempo indeterminado.</p>
  <p><strong>§ 2º.</strong> Caso a LOCADORA não queira prorrogar a locação ao terminar o prazo estipulado neste contrato, e o referido veículo não for devolvido, será cobrado o valor do aluguel proporcional aos dias de atraso acumulado de multa diária de R$ {{.DailyRate}}.</p>
  <p><strong>§ 3º.</strong> Finda a locação, o LOCATÁRIO deverá devolver o veículo nas mesmas condições em que recebeu, salvo os desgastes decorrentes do uso normal, sob pena de indenização por perdas e danos a ser apurada.</p>
  <br/>
  <p><strong>CLÁUSULA 4ª – DO COMBUSTÍVEL</strong></p>
  <p>O veículo será entregue ao LOCATÁRIO com um tanque de combustível completo, e sua quantidade será marcada no laudo de vistoria no momento da retirada.</p>
  <p><strong>§ 1º.</strong> Ao final do prazo estipulado, o LOCATÁRIO deverá devolver o veículo à LOCADORA com o tanque de combustível completo.</p>
  <p><strong>§ 2º.</strong> Caso não ocorra o cumprimento do parágrafo anterior, será cobrado o valor correspondente a leitura do marcador em oitavos, com base em tabela própria, e o valor do litro será informado no momento da retirada pela LOCADORA.</p>
  <p><strong>§ 3º.</strong> Caso seja constatado a utilização de combustível adulterado, o LOCATÁRIO responderá pelo mesmo e pelos danos decorrentes de tal utilização.</p>
  <p><strong>§ 4º.</strong> Fica desde já acordado que o LOCATÁRIO não terá direito a ressarcimento caso devolva o veículo com uma quantidade de combustível superior a que recebeu.</p>
  <br/>
  <p><strong>CLÁUSULA 5ª – DA LIMPEZA</strong></p>
  <p>O veículo será entregue ao LOCATÁRIO limpo e deverá ser devolvido à LOCADORA nas mesmas condições higiênicas que foi retirado.</p>
  <p><strong>§ 1º.</strong> Caso o veículo seja devolvido sujo, interna ou externamente, será cobrada uma taxa de lavagem simples ou especial, dependendo do estado do veículo na devolução.</p>
  <p><strong>§ 2º.</strong> Caso haja a necessidade de lavagem especial, será cobrada, além da taxa de lavagem, o valor mínimo de (uma) diária de locação, ou quantas diárias forem necessárias até a disponibilização do veículo para locação, limitado a 5 (cinco) diárias do veículo com base na tarifa vigente.</p>
  <br/>
  <p><strong>CLÁUSULA 6ª – DA UTILIZAÇÃO</strong></p>
  <p><strong>§ 1º.</strong> Deverá também o LOCATÁRIO utilizar o veículo alugado sempre de acordo com os regulamentos estabelecidos pelo Conselho Nacional de Trânsito (CONTRAN) e pelo Departamento Estadual de Trânsito (DETRAN).</p>
  <p><strong>§ 2º.</strong> A utilização do veículo de forma diferente do descrito acima estará sujeita à cobrança de multa, assim como poderá a LOCADORA dar por rescindido o presente contrato independente de qualquer notificação, e sem maiores formalidades poderá também proceder com o recolhimento do veículo sem que seja ensejada qualquer pretensão para ação indenizatória, reparatória ou compensatória pelo LOCATÁRIO.</p>
  <p><strong>§ 3º.</strong> Qualquer modificação no veículo só poderá ser feita com a autorização expressa da LOCADORA.</p>
  <p><strong>§ 4º.</strong> O LOCATÁRIO declara estar ciente que quaisquer danos causados, materiais ou pessoais, decorrente da utilização do veículo ora locado, será de sua responsabilidade.</p>
  <br/>
  <p><strong>CLÁUSULA 7ª RESTRIÇÃO TERRITORIAL</strong></p>
  <p>O LOCATÁRIO se compromete a utilizar o veículo exclusivamente dentro do território nacional brasileiro, sendo expressamente proibida sua saída para qualquer outro País. Descumprimento desta cláusula implicará em multa de ` + borderCrossFine + ` rescisão imediata do presente contrato, sem prejuízo das demais medidas legais cabíveis.</p>
  <br/>
  <p><strong>CLÁUSULA 8ª – DAS MULTAS E INFRAÇÕES</strong></p>
  <p>As multas ou quaisquer outras infrações às leis de trânsito, cometidas durante o período da locação do veículo, serão de responsabilidade do LOCATÁRIO, devendo ser liquidadas quando da notificação pelos órgãos competentes ou no final do contrato, o que ocorrer primeiro.</p>
  <p><strong>§ 1º.</strong> Em caso de apreensão do veículo, serão cobradas do Locatário todas as despesas de serviço dos profissionais envolvidos para liberação do veículo alugado, assim como todas as taxas cobradas pelos órgãos competentes, e também quantas diárias forem necessárias até a disponibilização do veículo para locação.</p>
  <p><strong>§ 2º.</strong> O LOCATÁRIO declara-se ciente e concorda que se ocorrer qualquer multa ou infração de trânsito durante a vigência deste contrato, seu nome poderá ser indicado pela LOCADORA junto ao Órgão de Trânsito autuante, na qualidade de condutor do veículo, tendo assim a pontuação recebida transferida para sua carteira de habilitação.</p>
  <p><strong>§ 3º.</strong> A LOCADORA poderá preencher os dados relativos à "apresentação do Condutor", previsto na Resolução 404/12 do CONTRAN, caso tenha sido lavrada autuação por infrações de trânsito enquanto o veículo esteve em posse e responsabilidade do LOCATÁRIO, situação na qual a LOCADORA apresentará para o Órgão de Trânsito competente a cópia do presente contrato celebrado com o LOCATÁRIO.</p>
  <p><strong>§ 4º.</strong> Descabe qualquer discussão sobre a procedência ou improcedência das infrações de trânsito aplicadas, e poderá o LOCATÁRIO, a seu critério e às suas expensas, recorrer das multas, junto ao Órgão de Trânsito competente, o que não o eximirá do pagamento do valor da multa, mas lhe dará o direito ao reembolso, caso o recurso seja julgado procedente.</p>
  <br/>
  <p><strong>CLÁUSULA 9ª – DA VEDAÇÃO À SUBLOCAÇÃO E EMPRÉSTIMO DO VEÍCULO</strong></p>
  <p>Será permitido o uso do veículo objeto do presente contrato, apenas do LOCATÁRIO, sendo vedada, no todo ou em parte, a sublocação, transferência, empréstimo, comodato ou cessão da locação, seja a qualquer título, sem expressa anuência da LOCADORA, sob pena de imediata rescisão, aplicação de multa e de demais penalidades contratuais e legais cabíveis.</p>
  <p><strong>Parágrafo único.</strong> Ocorrendo a utilização do veículo por terceiros com a concordância do LOCATÁRIO, este se responsabilizará por qualquer ação civil ou criminal que referida utilização possa gerar, isentando assim a LOCADORA de qualquer responsabilidade, ou ônus.</p>
  <br/>
  <p><strong>CLÁUSULA 10ª – DA MANUTENÇÃO</strong></p>
  <p>A manutenção do veículo, referente a troca das peças oriundas do desgaste natural de sua utilização, é de responsabilidade do LOCATÁRIO, sem ônus para a LOCADORA.</p>
  <p><strong>Parágrafo único.</strong> Se durante o período da manutenção o LOCATÁRIO não dispor do bem, ou de outro de categoria igual ou similar, terá desconto no aluguel, proporcional ao período de manutenção.</p>
  <br/>
  <p><strong>CLÁUSULA 11ª – DA UTILIZAÇÃO DO SEGURO</strong></p>
  <p>Ocorrendo a necessidade da utilização do seguro veicular, registrado em nome da LOCADORA, devido à perda, extravio, furto, roubo, destruição parcial ou total, ou colisão do veículo por ora locado, fica desde já estipulada indenização devida pelo LOCATÁRIO que deverá, para efeito de cobertura do valor da franquia do seguro veicular, pagar à LOCADORA o valor de ` + insuranceCopay + `.</p>
  <br/>
  <p><strong>CLÁUSULA 12ª – DOS DEVERES DO LOCATÁRIO</strong></p>
  <p>Sem prejuízo de outras disposições deste contrato, constituem obrigações do LOCATÁRIO:</p>
  <p>I – Pagar o aluguel e os encargos da locação, legal ou contratualmente exigíveis, no prazo estipulado;</p>
  <p>II – Usar o veículo como foi convencionado, de acordo com a sua natureza e com o objetivo a que se destina;</p>
  <p>III – cuidar e zelar do veículo como se fosse sua propriedade;</p>
  <p>IV – Restituir o veículo, no final da locação, no estado em que o recebeu, conforme o laudo de vistoria, salvo as deteriorações decorrentes do seu uso normal;</p>
  <p>V – Levar imediatamente ao conhecimento da LOCADORA o surgimento de qualquer dano, ou ocorrência, cuja reparação, e ou indenização, a esta enquadre;</p>
  <p>VI – Reparar rapidamente os danos sob sua responsabilidade;</p>
  <p>VII – não modificar a forma interna ou externa do veículo sem o consentimento prévio e por escrito da LOCADORA.</p>
  <br/>
  <p><strong>CLÁUSULA 13ª – DOS DEVERES DA LOCADORA</strong></p>
  <p>Sem prejuízo de outras disposições deste contrato, constituem obrigações da LOCADORA:</p>
  <p>I – Entregar ao LOCATÁRIO o veículo alugado em estado de servir ao uso a que se destina;</p>
  <p>II – Ser integralmente responsável pelos problemas, defeitos e vícios anteriores à locação.</p>
  <br/>
  <p><strong>CLÁUSULA 14ª – DA GARANTIA</strong></p>
  <p>O cumprimento das obrigações previstas neste contrato, inclusive o pagamento pontual do aluguel, estará garantido por caução dada em dinheiro, perfazendo o montante de R$ {{.Deposit}} (), entregue à LOCADORA no ato de assinatura deste contrato.</p>
  <p><strong>§ 1º.</strong> Ao final da locação, tendo sido todas as obrigações devidamente cumpridas, o LOCATÁRIO estará autorizado a levantar a respectiva soma.</p>
  <p><strong>§ 2º.</strong> A critério das partes, o valor dado como caução poderá ser revertido para o pagamento de aluguéis devidos.</p>
  <br/>
  <p><strong>CLÁUSULA 15ª – DA RESCISÃO</strong></p>
  <p>As partes poderão rescindir o contrato unilateralmente, sem apresentação de justificativa.</p>
  <p><strong>Parágrafo único.</strong> Em cumprimento ao princípio da boa-fé, as partes se comprometem a informar uma à outra qualquer fato que possa porventura intervir na relação jurídica formalizada através do presente contrato.</p>
  <br/>
  <p><strong>CLÁUSULA 16ª – DAS PENALIDADES</strong></p>
  <p>A parte que violar as obrigações previstas neste contrato se sujeitará ao pagamento de indenização e ressarcimento pelas perdas, danos, lucros cessantes, danos indiretos e quaisquer outros prejuízos patrimoniais ou morais percebidos pela outra parte em decorrência deste descumprimento, sem prejuízo de demais penalidades legais ou contratuais cabíveis.</p>
  <p><strong>§ 1º.</strong> Caso ocorra uma violação, este contrato poderá ser rescindido de pleno direito pela parte prejudicada, sem a necessidade aviso prévio.</p>
  <p><strong>§ 2º.</strong> Ocorrendo uma tolerância de uma das partes em relação ao descumprimento das cláusulas contidas neste instrumento não se configura em renúncia ou alteração da norma infringida.</p>
  <br/>
  <p><strong>CLÁUSULA 17ª – DO FORO</strong></p>
  <p>Fica desde já eleito o foro da comarca de ` + lessorCity + ` para serem resolvidas eventuais pendências decorrentes deste contrato.</p>
  <br/>
  {{if .Notes}}<p><strong>OBSERVAÇÕES</strong></p>
  <p>{{.Notes}}</p>
  <br/>
  {{end}}<p>Por estarem assim certos e ajustados, firmam os signatários este instrumento em 02 (duas) vias de igual teor e forma.</p>
  <br/><br/>
  <p style="text-align: center;">` + lessorCity + `, {{.IssueDate}}.</p>
  <br/><br/>
  <div style="text-align: center;">
    <p>______________________________________________________</p>
    <p>LOCADORA: ` + lessorOwner + `</p>
    <p>neste ato representando a pessoa jurídica Or dos Santos de Oliveira</p>
  </div>
  <br/><br/>
  <div style="text-align: center;">
    <p>_____________________________________________________</p>
    <p>LOCATÁRIO: {{.ClientName}}</p>
  </div>
  <br/><br/>
  <div>
    <p>TESTEMUNHAS:</p>
    <br/>
    <div>
      <p>1. _________________________________</p>
      <p>Nome:</p>
      <p>CPF:</p>
    </div>
    <div>
      <p>2. _________________________________</p>
      <p>Nome:</p>
      <p>CPF:</p>
    </div>
  </div>
</div>
`))

var garageContractTmpl = template.Must(template.New("garage").Parse(`
<div style="font-family: 'Times New Roman', Times, serif; font-size: 12pt; line-height: 1.5;">
  <h2 style="text-align: center; font-weight: bold;">CONTRATO DE PRESTAÇÃO DE SERVIÇOS AUTOMOTIVOS</h2>
  <br/>
  <p>Contratante: {{.ClientName}}, CPF/CNPJ n.º {{.ClientDoc}}.</p>
  <p>Contratada: ` + lessorCompany + `, CNPJ n.º ` + lessorCnpj + `, com sede em ` + lessorAddress + `.</p>
  <br/>
  <p><strong>VEÍCULO:</strong> {{.Vehicle}}{{if .Plate}}, placa {{.Plate}}{{end}}</p>
  <p><strong>SERVIÇOS CONTRATADOS:</strong></p>
  <p>{{.Services}}</p>
  <p><strong>VALOR TOTAL:</strong> R$ {{.Value}}</p>
  <p><strong>PRAZO DE ENTREGA:</strong> {{.Deadline}}</p>
  <br/>
  {{if .Notes}}<p><strong>OBSERVAÇÕES</strong></p>
  <p>{{.Notes}}</p>
  <br/>
  {{end}}<p style="text-align: center;">` + lessorCity + `, {{.IssueDate}}.</p>
  <br/><br/>
  <div style="text-align: center;">
    <p>______________________________________________________</p>
    <p>CONTRATADA: ` + lessorOwner + `</p>
  </div>
  <br/><br/>
  <div style="text-align: center;">
    <p>_____________________________________________________</p>
    <p>CONTRATANTE: {{.ClientName}}</p>
  </div>
</div>
`))

// RenderContract merges the snapshots into the legal skeleton selected by
// contractType and returns the document together with the computed day count
// and formatted total. Only the garage type uses the service-order skeleton;
// every other type (locadora, venda) renders the rental skeleton, matching
// the legacy generator. now fixes the issue date so rendering is a pure
// function of its inputs.
func RenderContract(contractType string, client ClientSnapshot, svc ServiceSnapshot, now time.Time) (string, int, string, error) {
	if contractType == models.ContractTypeGarage {
		doc, err := renderGarageContract(client, svc, now)
		return doc, 0, "0,00", err
	}
	return renderRentalContract(client, svc, now)
}

func renderRentalContract(client ClientSnapshot, svc ServiceSnapshot, now time.Time) (string, int, string, error) {
	start := utils.ParseDate(svc.StartDate)
	end := utils.ParseDate(svc.EndDate)
	days, total := utils.RentalTotal(start, end, svc.DailyRate)

	data := rentalTemplateData{
		ClientName:         client.Name,
		ClientDoc:          client.CpfCnpj,
		ClientAddress:      client.Address,
		ClientNeighborhood: client.Neighborhood,
		Model:              svc.Model,
		Year:               svc.Year,
		Plate:              svc.Plate,
		MarketValue:        svc.MarketValue,
		DailyRate:          svc.DailyRate,
		Total:              total,
		Days:               days,
		StartDate:          utils.FormatDateBR(start),
		EndDate:            utils.FormatDateBR(end),
		Deposit:            svc.Deposit,
		Notes:              svc.Notes,
		IssueDate:          utils.LongDateBR(now),
	}

	var buf bytes.Buffer
	if err := rentalContractTmpl.Execute(&buf, data); err != nil {
		return "", 0, "", err
	}
	return buf.String(), days, total, nil
}

func renderGarageContract(client ClientSnapshot, svc ServiceSnapshot, now time.Time) (string, error) {
	data := garageTemplateData{
		ClientName: client.Name,
		ClientDoc:  client.CpfCnpj,
		Vehicle:    svc.Vehicle,
		Plate:      svc.Plate,
		Services:   svc.Services,
		Value:      svc.Value,
		Deadline:   svc.Deadline,
		Notes:      svc.Notes,
		IssueDate:  utils.FormatDateBR(now),
	}

	var buf bytes.Buffer
	if err := garageContractTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
