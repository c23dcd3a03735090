package content

import "manisera/affirmation-app/internal/domain"

// builtinPools is the embedded affirmation catalog. The full production
// catalog (~600 phrases per category) lives in object storage; this built-in
// set is the fallback and keeps the service usable with no bucket configured.
var builtinPools = map[domain.FocusCategory]sessionPools{
	domain.FocusBani: {
		Morning: []string{
			"Abundența vine natural în viața mea.",
			"Banii vin spre mine cu ușurință și abundență.",
			"Sunt un magnet pentru oportunități financiare.",
			"Prosperitatea este starea mea naturală.",
			"Îmi deschid inima la toate oportunitățile financiare de azi.",
			"Sunt pregătit să primesc toate binecuvântările financiare.",
			"Energia prosperității este puternică în mine.",
			"Încep ziua deschis la toate sursele de abundență.",
			"Merit prosperitate în toate formele ei.",
			"Fiecare dimineață îmi aduce noi oportunități de câștig.",
			"Banii curg liber și constant în viața mea.",
			"Sunt recunoscător pentru abundența care vine spre mine.",
		},
		Afternoon: []string{
			"Sunt recunoscător pentru toate oportunitățile financiare de azi.",
			"Energia prosperității este echilibrată și puternică.",
			"Investesc în viitorul meu cu înțelepciune.",
			"Sunt deschis la toate oportunitățile care se prezintă.",
			"Deciziile mele financiare sunt clare și inspirate.",
			"Valoarea mea crește cu fiecare acțiune pe care o fac.",
			"Sunt demn de toate binecuvântările financiare.",
			"Abundența mă însoțește în tot ce fac astăzi.",
			"Atrag clienți și colaborări valoroase.",
			"Îmi permit să fiu împlinit financiar.",
			"Prosperitatea mea crește în fiecare zi.",
			"Sunt lider în domeniul meu și merit toate recompensele.",
		},
		Evening: []string{
			"Mulțumesc pentru toate oportunitățile financiare din ziua de azi.",
			"Sunt recunoscător pentru toate lecțiile despre abundență.",
			"Închei ziua în pace cu toate aspectele financiare.",
			"Îmi iubesc și îmi accept abundența în toate formele.",
			"Banii lucrează pentru mine chiar și când mă odihnesc.",
			"Sunt în pace cu toate aspectele prosperității.",
			"Fiecare zi mă apropie de libertatea financiară.",
			"Adorm cu recunoștință pentru tot ce am primit.",
			"Prosperitatea mea se consolidează în liniște.",
			"Sunt recunoscător pentru bogățiile din viața mea.",
			"Abundența de azi pregătește abundența de mâine.",
			"Merit odihna și răsplata pentru munca mea.",
		},
	},
	domain.FocusSanatate: {
		Morning: []string{
			"Corpul meu este plin de energie și vitalitate.",
			"Sănătatea mea se îmbunătățește în fiecare zi.",
			"Fiecare celulă din corpul meu vibrează cu sănătate.",
			"Mă trezesc odihnit și plin de forță.",
			"Respir adânc și simt energia zilei curgând prin mine.",
			"Sunt în armonie cu ritmurile naturale ale corpului.",
			"Energia curge liber prin tot corpul meu.",
			"Corpul meu se vindecă și se regenerează constant.",
			"Încep ziua cu vitalitate și claritate.",
			"Aleg mișcarea și hrana care îmi fac bine.",
			"Sistemul meu imunitar este puternic și activ.",
			"Sunt un exemplu viu de sănătate și vitalitate.",
		},
		Afternoon: []string{
			"Energia mea este echilibrată și puternică.",
			"Corpul meu îmi mulțumește pentru grija pe care i-o port.",
			"Sunt atent la semnalele corpului meu.",
			"Fiecare pas pe care îl fac îmi întărește sănătatea.",
			"Mă hrănesc cu tot ce îmi susține vitalitatea.",
			"Respir calm și corpul meu se relaxează.",
			"Sănătatea mea este o prioritate pe care o onorez.",
			"Sunt plin de energie pentru tot ce am de făcut.",
			"Corpul meu este puternic, flexibil și rezistent.",
			"Aleg echilibrul în tot ce fac astăzi.",
			"Vitalitatea mea inspiră oamenii din jur.",
			"Sunt în perfectă armonie cu toate sistemele corpului meu.",
		},
		Evening: []string{
			"Mulțumesc corpului meu pentru tot ce a făcut azi.",
			"Mă eliberez de tensiunea acumulată peste zi.",
			"Somnul meu este profund și vindecător.",
			"Corpul meu se regenerează în timp ce mă odihnesc.",
			"Sunt recunoscător pentru sănătatea mea.",
			"Fiecare respirație mă liniștește și mă vindecă.",
			"Închei ziua în armonie cu corpul meu.",
			"Celulele mele se reînnoiesc în timpul nopții.",
			"Adorm cu încredere în puterea corpului meu.",
			"Sănătatea mea se consolidează în fiecare noapte.",
			"Îmi permit odihna de care corpul meu are nevoie.",
			"Sunt în pace cu ritmul natural al vieții mele.",
		},
	},
	domain.FocusIubire: {
		Morning: []string{
			"Iubirea curge liber prin inima mea.",
			"Sunt deschis la conexiuni profunde și autentice.",
			"Îmi deschid inima la toată iubirea din jurul meu.",
			"Sunt demn de iubire autentică și reciprocă.",
			"Încep ziua cu inima deschisă și recunoscătoare.",
			"Dau și primesc iubire cu ușurință și naturalitate.",
			"Iubirea mea pentru mine crește în fiecare dimineață.",
			"Atrag oameni calzi și sinceri în viața mea.",
			"Sunt un magnet pentru iubire profundă și autentică.",
			"Relațiile mele sunt pline de respect și înțelegere.",
			"Îmi permit să fiu vulnerabil și autentic.",
			"Iubirea este limbajul cu care încep fiecare zi.",
		},
		Afternoon: []string{
			"Relațiile mele cresc în armonie și înțelegere.",
			"Ofer iubire în fiecare interacțiune de azi.",
			"Sunt prezent și atent cu oamenii dragi.",
			"Iubirea mea se reflectă în toate interacțiunile mele.",
			"Aleg compasiunea în locul judecății.",
			"Sunt deschis la toate formele de iubire.",
			"Inima mea rămâne deschisă chiar și în momente grele.",
			"Atrag reciprocitate și respect în relațiile mele.",
			"Îmi iubesc și îmi accept toate părțile.",
			"Conexiunile mele se adâncesc cu fiecare zi.",
			"Sunt atractiv pentru oamenii potriviți și merituoși.",
			"Iubirea pe care o ofer se întoarce înmulțită.",
		},
		Evening: []string{
			"Mulțumesc pentru toată iubirea primită azi.",
			"Închei ziua cu inima plină de recunoștință.",
			"Iert și mă eliberez de orice resentiment.",
			"Sunt în pace cu toate relațiile mele.",
			"Iubirea mă însoțește și în somn.",
			"Sunt recunoscător pentru oamenii dragi din viața mea.",
			"Inima mea se odihnește în liniște și siguranță.",
			"Mă iubesc și mă accept exact așa cum sunt.",
			"Fiecare zi îmi adâncește capacitatea de a iubi.",
			"Adorm înconjurat de iubire și căldură.",
			"Sunt demn de toate binecuvântările iubirii.",
			"Relațiile mele se vindecă și cresc în timp ce mă odihnesc.",
		},
	},
	domain.FocusIncredere: {
		Morning: []string{
			"Încrederea mea crește în fiecare zi.",
			"Sunt sigur în abilitățile și talentele mele.",
			"Încep ziua cu curaj și claritate.",
			"Merit succesul și recunoașterea.",
			"Am încredere în pașii mei și în direcția pe care o urmez.",
			"Vocea mea merită să fie auzită.",
			"Sunt pregătit pentru orice provocare de azi.",
			"Puterea mea interioară este de neclintit.",
			"Îmi susțin deciziile cu forță și claritate.",
			"Fiecare dimineață îmi întărește încrederea în mine.",
			"Sunt capabil să realizez tot ce îmi propun.",
			"Sunt un exemplu viu de încredere și autoritate.",
		},
		Afternoon: []string{
			"Acționez cu hotărâre și calm.",
			"Sunt lider în domeniul meu de expertiză.",
			"Deciziile mele sunt clare și bine fundamentate.",
			"Încrederea mea inspiră și influențează pe alții.",
			"Greșelile sunt trepte spre măiestria mea.",
			"Îmi apăr limitele cu respect și fermitate.",
			"Sunt sigur în toate deciziile și acțiunile mele.",
			"Provocările scot la iveală ce e mai bun din mine.",
			"Valoarea mea nu depinde de validarea altora.",
			"Vorbesc deschis și cu convingere.",
			"Sunt demn de respectul celor din jur.",
			"Fiecare reușită îmi confirmă puterea interioară.",
		},
		Evening: []string{
			"Sunt mândru de tot ce am realizat azi.",
			"Mulțumesc pentru curajul pe care l-am avut astăzi.",
			"Închei ziua împăcat cu deciziile mele.",
			"Încrederea mea se consolidează în fiecare seară.",
			"Mă eliberez de îndoieli și de critica interioară.",
			"Sunt recunoscător pentru puterea mea interioară.",
			"Fiecare zi mă face mai sigur pe mine.",
			"Adorm cu încredere în ziua de mâine.",
			"Îmi recunosc meritele fără rezerve.",
			"Sunt în pace cu cine sunt și cu cine devin.",
			"Realizările mele de azi pregătesc succesele de mâine.",
			"Merit odihna învingătorului.",
		},
	},
	domain.FocusCalm: {
		Morning: []string{
			"Liniștea este starea mea naturală.",
			"Sunt centrat și echilibrat în toate momentele.",
			"Respir calm și profund în orice situație.",
			"Încep ziua din liniște, nu din grabă.",
			"Aleg pacea în fiecare clipă a zilei.",
			"Mintea mea este limpede și liniștită.",
			"Sunt prezent și mintea mea este liniștită.",
			"Pacea interioară mă însoțește oriunde merg.",
			"Respirația mea mă ancorează în prezent.",
			"Sunt în armonie cu tot ce mă înconjoară.",
			"Calmul meu este mai puternic decât orice agitație.",
			"Sunt un exemplu viu de liniște și echilibru.",
		},
		Afternoon: []string{
			"Eliberez tensiunea cu fiecare expirație.",
			"Rămân calm indiferent de ce se întâmplă în jur.",
			"Aleg răspunsul liniștit în locul reacției grăbite.",
			"Pacea mea interioară nu depinde de exterior.",
			"Sunt ancorat în prezent și în siguranță.",
			"Liniștea mea se răspândește și influențează pe alții.",
			"Fiecare pauză de respirație îmi reface echilibrul.",
			"Sunt în pace cu toate aspectele vieții mele.",
			"Gândurile mele se așază ca apa liniștită.",
			"Port calmul cu mine în fiecare conversație.",
			"Sunt în control al emoțiilor și gândurilor mele.",
			"Echilibrul meu interior este de neclintit.",
		},
		Evening: []string{
			"Mă eliberez de toate grijile zilei.",
			"Seara mă învăluie în liniște și pace.",
			"Mulțumesc pentru momentele de calm de azi.",
			"Mintea mea se liniștește odată cu apusul.",
			"Adorm în pace cu mine și cu lumea.",
			"Fiecare expirație mă eliberează de tensiune.",
			"Sunt recunoscător pentru liniștea din inima mea.",
			"Noaptea îmi aduce odihnă profundă și senină.",
			"Închei ziua în armonie și echilibru.",
			"Pacea mea interioară se adâncește în fiecare seară.",
			"Îmi permit să las ziua să se încheie.",
			"Somnul meu este calm și reparator.",
		},
	},
	domain.FocusFocus: {
		Morning: []string{
			"Concentrarea mea este puternică și susținută.",
			"Încep ziua cu obiective clare și realizabile.",
			"Mintea mea este limpede și pregătită de lucru.",
			"Aleg ce e important acum și mă concentrez pe asta.",
			"Sunt productiv și eficient în toate activitățile.",
			"Energia mea se îndreaptă spre ce contează.",
			"Fiecare dimineață îmi ascute atenția.",
			"Sunt stăpân pe timpul și pe atenția mea.",
			"Prioritatea mea de azi este clară.",
			"Distracțiile nu au putere asupra mea.",
			"Progresul meu este constant și vizibil.",
			"Sunt un exemplu viu de concentrare și disciplină.",
		},
		Afternoon: []string{
			"Finalizez o acțiune înainte de alta cu eficiență.",
			"Atenția mea rămâne fermă pe sarcina curentă.",
			"Revin cu ușurință la lucru după orice întrerupere.",
			"Fiecare oră de concentrare mă apropie de obiectiv.",
			"Distracțiile nu mă afectează concentrarea și focusul.",
			"Lucrez cu claritate și cu scop.",
			"Mintea mea filtrează ce nu e esențial.",
			"Sunt disciplinat și consecvent în acțiunile mele.",
			"Energia mea de lucru este stabilă și profundă.",
			"Termin ce încep, cu calm și precizie.",
			"Obiectivele mele sunt clare și realizabile.",
			"Sunt un maestru al concentrării și al realizărilor.",
		},
		Evening: []string{
			"Sunt mulțumit de progresul făcut azi.",
			"Mulțumesc pentru claritatea de care am dat dovadă.",
			"Închei ziua cu sarcinile importante realizate.",
			"Mă eliberez de ce a rămas nefăcut, fără vinovăție.",
			"Mintea mea se odihnește pentru claritatea de mâine.",
			"Fiecare zi îmi întărește disciplina.",
			"Sunt recunoscător pentru puterea mea de concentrare.",
			"Progresul de azi construiește reușita de mâine.",
			"Adorm cu mintea limpede și ordonată.",
			"Îmi planific ziua de mâine cu încredere.",
			"Sunt consecvent cu obiectivele mele.",
			"Disciplina mea lucrează pentru mine și în odihnă.",
		},
	},
}
